package worker

import (
	"context"
	"log/slog"
	"time"

	"adpulse/config"
	"adpulse/internal/delivery"
	deliverycontext "adpulse/internal/delivery/context"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/errors"
	"adpulse/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the sweep scheduler
type SchedulerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	SyncUC usecase.SyncUsecase
}

// scheduler sweeps every eligible client on a fixed interval. Replicas share
// the sweep lock, so only one of them syncs per tick.
type scheduler struct {
	syncUC   usecase.SyncUsecase
	enabled  bool
	interval time.Duration
	logger   *slog.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewScheduler creates the periodic sweep delivery.
func NewScheduler(params SchedulerParams) delivery.Delivery {
	s := &scheduler{
		syncUC: params.SyncUC,
		logger: params.Logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	if params.Cfg.Sync != nil {
		s.enabled = params.Cfg.Sync.Schedule.Enabled
		s.interval = params.Cfg.Sync.Schedule.Interval
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Serve blocks until the scheduler is stopped.
func (s *scheduler) Serve(ctx context.Context) error {
	defer close(s.doneCh)

	if !s.enabled || s.interval <= 0 {
		s.logger.Info("Scheduled sync disabled")

		return nil
	}

	s.logger.Info("Starting sync scheduler", slog.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *scheduler) runOnce(ctx context.Context) {
	requestID := "sweep-" + uuid.NewString()
	ctx = deliverycontext.WithTrace(ctx, s.logger, requestID)
	logger := deliverycontext.GetLogger(ctx)

	result, err := s.syncUC.RunSweep(ctx)
	switch {
	case errors.Is(err, domainerrors.ErrSweepInProgress):
		logger.Info("Sweep already running elsewhere, skipping tick")
	case err != nil:
		logger.Error("Scheduled sweep failed to start", slog.Any("error", err))
	default:
		logger.Info("Scheduled sweep finished",
			slog.Int("total", result.Total),
			slog.Int("success", result.Success),
			slog.Int("failed", result.Failed),
		)
	}
}

// stop waits for an in-flight sweep to finish or ctx to expire.
func (s *scheduler) stop(ctx context.Context) error {
	close(s.stopCh)

	select {
	case <-s.doneCh:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler did not stop in time")
	}
}
