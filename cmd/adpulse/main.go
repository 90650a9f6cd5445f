package main

import (
	"context"
	"log/slog"
	"os"

	"adpulse/config"
	"adpulse/internal/delivery"
	"adpulse/internal/delivery/api"
	"adpulse/internal/delivery/api/middleware"
	"adpulse/internal/delivery/api/router/handler"
	"adpulse/internal/infra/auth"
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

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
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
			impl.NewConnectionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSyncHandler,
			handler.NewGoogleHandler,
			handler.NewAlertHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
