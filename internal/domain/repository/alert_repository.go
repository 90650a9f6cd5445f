package repository

import (
	"context"
	"time"

	"adpulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when an alert does not exist.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines persistence for alerts.
type AlertRepository interface {
	// ExistsAlertSince reports whether an alert of the given type was raised for the
	// client at or after since.
	ExistsAlertSince(ctx context.Context, clientID uuid.UUID, alertType entity.AlertType, since time.Time) (bool, error)

	// FindAlertByID retrieves an alert with the client's company name.
	FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)
	// CreateAlert inserts an alert and fills its ID and CreatedAt.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// ListAlerts lists alerts newest first.
	ListAlerts(ctx context.Context, filter entity.AlertFilter) ([]*entity.Alert, error)

	// UpdateAlertRead sets the read flag and returns the updated alert.
	UpdateAlertRead(ctx context.Context, id uuid.UUID, isRead bool) (*entity.Alert, error)
}
