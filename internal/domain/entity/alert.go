package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertType identifies the rule that raised an alert.
type AlertType string

const (
	AlertTypeBudget80  AlertType = "BUDGET_80"
	AlertTypeBudget90  AlertType = "BUDGET_90"
	AlertTypeBudget100 AlertType = "BUDGET_100"
)

// AlertSeverity orders alerts for display.
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "CRITICAL"
	AlertSeverityHigh     AlertSeverity = "HIGH"
	AlertSeverityMedium   AlertSeverity = "MEDIUM"
	AlertSeverityLow      AlertSeverity = "LOW"
)

// Alert is a notification raised for a client.
type Alert struct {
	ID        uuid.UUID     `json:"id"`
	ClientID  uuid.UUID     `json:"clientId"`
	Type      AlertType     `json:"type"`
	Message   string        `json:"message"`
	Severity  AlertSeverity `json:"severity"`
	IsRead    bool          `json:"isRead"`
	CreatedAt time.Time     `json:"createdAt"`

	// CompanyName of the client, filled by listings.
	CompanyName string `json:"companyName,omitempty"`
}

// AlertFilter narrows alert listings.
type AlertFilter struct {
	ClientID   *uuid.UUID
	UnreadOnly bool
	Limit      int
}
