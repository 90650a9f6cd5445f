package entity

import (
	"time"

	"github.com/google/uuid"
)

// SyncType distinguishes kinds of sync runs. Only FULL is produced today.
type SyncType string

const SyncTypeFull SyncType = "FULL"

// SyncLogStatus tracks a sync attempt. RUNNING moves to exactly one of SUCCESS or FAILED.
type SyncLogStatus string

const (
	SyncLogRunning SyncLogStatus = "RUNNING"
	SyncLogSuccess SyncLogStatus = "SUCCESS"
	SyncLogFailed  SyncLogStatus = "FAILED"
)

// SyncLog is the audit record of one sync attempt.
type SyncLog struct {
	ID           uuid.UUID     `json:"id"`
	ConnectionID uuid.UUID     `json:"connectionId"`
	Type         SyncType      `json:"type"`
	Status       SyncLogStatus `json:"status"`
	RecordsCount int           `json:"recordsCount"`
	Error        string        `json:"error,omitempty"`
	StartedAt    time.Time     `json:"startedAt"`
	CompletedAt  *time.Time    `json:"completedAt,omitempty"`

	// GoogleEmail of the connection, filled by status listings.
	GoogleEmail string `json:"googleEmail,omitempty"`
}
