package postgres

import (
	"context"
	"time"

	"gsync/config"
	"gsync/internal/domain/entity"
	"gsync/internal/domain/repository"
	"gsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// recordRepository implements repository.RecordRepository on top of UpsertBatch.
type recordRepository struct {
	db        *gorm.DB
	chunkSize int
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB, cfg *config.Config) repository.RecordRepository {
	chunkSize := DefaultChunkSize
	if cfg != nil && cfg.Sync != nil && cfg.Sync.ChunkSize > 0 {
		chunkSize = cfg.Sync.ChunkSize
	}

	return &recordRepository{db: db, chunkSize: chunkSize}
}

type emailKey struct {
	userID     uuid.UUID
	providerID string
}

type eventKey struct {
	userID     uuid.UUID
	calendarID string
	providerID string
}

// UpsertEmails writes email headers keyed by (user_id, provider_id).
func (repo *recordRepository) UpsertEmails(ctx context.Context, records []*entity.EmailRecord) (int, error) {
	records = dedupeLast(records, func(r *entity.EmailRecord) emailKey {
		return emailKey{userID: r.UserID, providerID: r.ProviderID}
	})

	now := time.Now().UTC()
	rows := make([]model.EmailRecordModel, 0, len(records))
	for _, record := range records {
		rows = append(rows, fromEmailDomain(record, now))
	}

	return UpsertBatch(ctx, repo.db, rows, model.EmailRecordConflictColumns, repo.chunkSize)
}

// UpsertEvents writes calendar events keyed by (user_id, calendar_id, provider_id).
func (repo *recordRepository) UpsertEvents(ctx context.Context, events []*entity.CalendarEvent) (int, error) {
	events = dedupeLast(events, func(e *entity.CalendarEvent) eventKey {
		return eventKey{userID: e.UserID, calendarID: e.CalendarID, providerID: e.ProviderID}
	})

	now := time.Now().UTC()
	rows := make([]model.CalendarEventModel, 0, len(events))
	for _, event := range events {
		rows = append(rows, fromEventDomain(event, now))
	}

	return UpsertBatch(ctx, repo.db, rows, model.CalendarEventConflictColumns, repo.chunkSize)
}

func fromEmailDomain(record *entity.EmailRecord, now time.Time) model.EmailRecordModel {
	id := record.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	syncedAt := record.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = now
	}

	return model.EmailRecordModel{
		ID:           id,
		UserID:       record.UserID,
		ProviderID:   record.ProviderID,
		ThreadID:     record.ThreadID,
		FromAddress:  record.From,
		ToAddresses:  jsonSlice(record.To),
		CcAddresses:  jsonSlice(record.Cc),
		Subject:      record.Subject,
		Snippet:      record.Snippet,
		LabelIDs:     jsonSlice(record.LabelIDs),
		InternalDate: record.InternalDate.UTC(),
		SyncedAt:     syncedAt,
	}
}

func fromEventDomain(event *entity.CalendarEvent, now time.Time) model.CalendarEventModel {
	id := event.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	syncedAt := event.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = now
	}

	return model.CalendarEventModel{
		ID:         id,
		UserID:     event.UserID,
		CalendarID: event.CalendarID,
		ProviderID: event.ProviderID,
		Summary:    event.Summary,
		Status:     event.Status,
		Organizer:  event.Organizer,
		Attendees:  jsonSlice(event.Attendees),
		StartAt:    event.StartAt.UTC(),
		EndAt:      event.EndAt.UTC(),
		AllDay:     event.AllDay,
		HTMLLink:   event.HTMLLink,
		SyncedAt:   syncedAt,
	}
}

// jsonSlice stores nil as [] so the NOT NULL columns accept it.
func jsonSlice(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}

	return datatypes.JSONSlice[string](values)
}
