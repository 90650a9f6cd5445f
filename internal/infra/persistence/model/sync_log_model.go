package model

import (
	"time"

	"github.com/google/uuid"
)

// SyncLogModel is the GORM-specific struct for the 'sync_logs' table.
type SyncLogModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ConnectionID uuid.UUID  `gorm:"type:uuid;not null;index"`
	SyncType     string     `gorm:"type:varchar(20);not null"`
	Status       string     `gorm:"type:varchar(20);not null"`
	RecordsCount int        `gorm:"not null;default:0"`
	ErrorMessage *string    `gorm:"type:text"`
	StartedAt    time.Time  `gorm:"not null;index"`
	CompletedAt  *time.Time `gorm:"type:timestamptz"`
}

// TableName explicitly sets the table name for GORM.
func (SyncLogModel) TableName() string {
	return "sync_logs"
}

// SyncLogRow is a sync log joined with its connection email.
type SyncLogRow struct {
	SyncLogModel
	GoogleEmail string
}
