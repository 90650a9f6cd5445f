package main

import (
	"context"
	"log/slog"
	"os"

	"adpulse/config"
	"adpulse/internal/delivery"
	"adpulse/internal/delivery/worker"
	"adpulse/internal/delivery/worker/handler"
	"adpulse/internal/infra/auth/google"
	"adpulse/internal/infra/crypto"
	"adpulse/internal/infra/googleads"
	"adpulse/internal/infra/lock"
	logs "adpulse/internal/infra/log"
	"adpulse/internal/infra/metrics"
	"adpulse/internal/infra/notification"
	"adpulse/internal/infra/persistence/postgres"
	"adpulse/internal/infra/pubsub"
	"adpulse/internal/usecase/impl"

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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		lock.NewRedisClient,
		metrics.NewDefault,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewConnectionRepository,
			postgres.NewClientRepository,
			postgres.NewCampaignRepository,
			postgres.NewMetricsRepository,
			postgres.NewSyncLogRepository,
			postgres.NewAlertRepository,
			postgres.NewSettingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			crypto.NewTokenVault,
			lock.NewLocker,
			metrics.AsSyncMetrics,
			google.NewCredentialResolver,
			google.NewOAuthService,
			googleads.NewClient,
			pubsub.NewEventPublisher,
			notification.NewAlertNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSyncService,
			impl.NewAlertService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
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
