package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "adpulse/internal/delivery/context"
	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/repository"
	"adpulse/internal/domain/service"
	"adpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultAlertLimit = 50

type budgetThreshold struct {
	percent   int64
	alertType entity.AlertType
	severity  entity.AlertSeverity
}

// Highest first; only the first match is considered.
var budgetThresholds = []budgetThreshold{
	{percent: 100, alertType: entity.AlertTypeBudget100, severity: entity.AlertSeverityCritical},
	{percent: 90, alertType: entity.AlertTypeBudget90, severity: entity.AlertSeverityHigh},
	{percent: 80, alertType: entity.AlertTypeBudget80, severity: entity.AlertSeverityMedium},
}

// alertService implements the AlertUsecase interface.
type alertService struct {
	clientRepo  repository.ClientRepository
	metricsRepo repository.MetricsRepository
	alertRepo   repository.AlertRepository
	publisher   service.EventPublisher
	notifier    service.AlertNotifier
	syncMetrics service.SyncMetrics
	logger      *slog.Logger
	now         func() time.Time
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	ClientRepo  repository.ClientRepository
	MetricsRepo repository.MetricsRepository
	AlertRepo   repository.AlertRepository
	Publisher   service.EventPublisher
	Notifier    service.AlertNotifier `optional:"true"`
	SyncMetrics service.SyncMetrics
	Logger      *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		clientRepo:  params.ClientRepo,
		metricsRepo: params.MetricsRepo,
		alertRepo:   params.AlertRepo,
		publisher:   params.Publisher,
		notifier:    params.Notifier,
		syncMetrics: params.SyncMetrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckAndCreateAlerts compares month-to-date spend with the monthly budget and
// stores an alert for the highest threshold reached, once per calendar month.
func (srv *alertService) CheckAndCreateAlerts(ctx context.Context, clientID uuid.UUID) error {
	client, err := srv.clientRepo.FindClientByID(ctx, clientID)
	if errors.Is(err, repository.ErrClientNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to load client")
	}

	budget := decimal.NewFromFloat(client.MonthlyBudget)
	if budget.IsZero() {
		return nil
	}

	monthStart := startOfMonth(srv.now())
	spendValue, err := srv.metricsRepo.SumCostSince(ctx, clientID, monthStart)
	if err != nil {
		return errors.Wrap(err, "failed to sum month-to-date spend")
	}
	spend := decimal.NewFromFloat(spendValue)
	percentage := spend.Div(budget).Mul(decimal.NewFromInt(100))

	for _, threshold := range budgetThresholds {
		if percentage.LessThan(decimal.NewFromInt(threshold.percent)) {
			continue
		}

		exists, err := srv.alertRepo.ExistsAlertSince(ctx, clientID, threshold.alertType, monthStart)
		if err != nil {
			return errors.Wrap(err, "failed to check existing alerts")
		}
		if exists {
			return nil
		}

		alert := &entity.Alert{
			ClientID: clientID,
			Type:     threshold.alertType,
			Message:  budgetMessage(threshold.percent, client.Currency, spend, budget),
			Severity: threshold.severity,
		}
		if err := srv.alertRepo.CreateAlert(ctx, alert); err != nil {
			return errors.Wrap(err, "failed to create alert")
		}
		srv.syncMetrics.IncAlert(string(alert.Type))

		srv.log(ctx).Info("Budget alert created",
			slog.String("client_id", clientID.String()),
			slog.String("type", string(alert.Type)),
			slog.String("percentage", percentage.StringFixed(1)),
		)
		srv.publish(ctx, alert)
		srv.notify(ctx, alert)

		return nil
	}

	return nil
}

// publish is best effort; the alert is already stored.
func (srv *alertService) publish(ctx context.Context, alert *entity.Alert) {
	event := &service.AlertEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		AlertID:   alert.ID.String(),
		ClientID:  alert.ClientID.String(),
		Type:      string(alert.Type),
		Severity:  string(alert.Severity),
		Message:   alert.Message,
		CreatedAt: alert.CreatedAt.UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishAlertEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish alert event",
			slog.String("alert_id", event.AlertID),
			slog.Any("error", err),
		)
	}
}

func (srv *alertService) notify(ctx context.Context, alert *entity.Alert) {
	if srv.notifier == nil {
		return
	}

	if err := srv.notifier.NotifyAlert(ctx, alert); err != nil {
		srv.log(ctx).Warn("Failed to push alert notification",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}
}

// ListAlerts lists alerts newest first.
func (srv *alertService) ListAlerts(ctx context.Context, filter entity.AlertFilter) ([]*entity.Alert, error) {
	if filter.Limit <= 0 || filter.Limit > defaultAlertLimit {
		filter.Limit = defaultAlertLimit
	}

	alerts, err := srv.alertRepo.ListAlerts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	return alerts, nil
}

// MarkAlertRead updates the read flag of an alert.
func (srv *alertService) MarkAlertRead(ctx context.Context, alertID uuid.UUID, isRead bool, scope *uuid.UUID) (*entity.Alert, error) {
	if scope != nil {
		alert, err := srv.alertRepo.FindAlertByID(ctx, alertID)
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find alert")
		}
		if alert.ClientID != *scope {
			return nil, domainerrors.ErrForbidden
		}
	}

	alert, err := srv.alertRepo.UpdateAlertRead(ctx, alertID, isRead)
	if errors.Is(err, repository.ErrAlertNotFound) {
		return nil, domainerrors.ErrAlertNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update alert")
	}

	return alert, nil
}

func startOfMonth(now time.Time) time.Time {
	now = now.UTC()

	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// budgetMessage renders e.g. "Budget at 80%: MYR4200 / MYR5000".
func budgetMessage(percent int64, currency string, spend, budget decimal.Decimal) string {
	label := fmt.Sprintf("at %d%%", percent)
	if percent == 100 {
		label = "exceeded"
	}

	return fmt.Sprintf("Budget %s: %s%s / %s%s", label, currency, spend.StringFixed(0), currency, budget.StringFixed(0))
}
