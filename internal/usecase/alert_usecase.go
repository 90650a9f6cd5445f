package usecase

import (
	"context"

	"adpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertUsecase evaluates and manages budget alerts.
type AlertUsecase interface {
	// CheckAndCreateAlerts raises at most one budget alert for the client based
	// on month-to-date spend.
	CheckAndCreateAlerts(ctx context.Context, clientID uuid.UUID) error

	// ListAlerts lists alerts newest first.
	ListAlerts(ctx context.Context, filter entity.AlertFilter) ([]*entity.Alert, error)

	// MarkAlertRead sets the read flag. A non-nil scope restricts the update to
	// alerts of that client.
	MarkAlertRead(ctx context.Context, alertID uuid.UUID, isRead bool, scope *uuid.UUID) (*entity.Alert, error)
}
