package main

import (
	"gsync/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AuthTokenModel{},
		model.SyncHeadModel{},
		model.EmailSyncPeriodModel{},
		model.CalendarSyncPeriodModel{},
		model.SyncMessageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
