package main

import (
	"context"
	"log/slog"
	"os"

	"gsync/config"
	"gsync/internal/delivery"
	"gsync/internal/delivery/api"
	"gsync/internal/infra/archive"
	"gsync/internal/infra/auth"
	googleauth "gsync/internal/infra/auth/google"
	"gsync/internal/infra/crypto"
	googleapi "gsync/internal/infra/google"
	logs "gsync/internal/infra/log"
	"gsync/internal/infra/persistence/postgres"
	"gsync/internal/infra/pubsub"
	"gsync/internal/infra/secret"
	"gsync/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		api.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		secret.Module,
		crypto.Module,
		archive.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTokenRepository,
			postgres.NewProgressRepository,
			postgres.NewMessageRepository,
			postgres.NewRecordRepository,
			postgres.NewMatchRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			googleauth.NewOAuthService,
			googleapi.NewFetcher,
			googleapi.NewGmailSource,
			googleapi.NewCalendarSource,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenRefresher,
			impl.NewTokenStore,
			impl.NewProgressTracker,
			impl.NewSyncService,
			impl.NewConnectService,
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
