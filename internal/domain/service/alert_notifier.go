package service

import (
	"context"

	"adpulse/internal/domain/entity"
)

// AlertNotifier pushes a newly created alert to the client's devices.
type AlertNotifier interface {
	NotifyAlert(ctx context.Context, alert *entity.Alert) error
}
