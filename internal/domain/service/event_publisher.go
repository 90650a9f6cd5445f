package service

import (
	"context"
)

// AlertEvent is published whenever a new alert is stored.
type AlertEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	AlertID   string `json:"alert_id"`
	ClientID  string `json:"client_id"`
	Type      string `json:"type"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert for downstream notification channels
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
