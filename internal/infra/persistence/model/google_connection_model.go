package model

import (
	"time"

	"github.com/google/uuid"
)

// GoogleConnectionModel is the GORM-specific struct for the 'google_connections' table.
// RefreshToken holds the vault ciphertext, never the plain token.
type GoogleConnectionModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GoogleEmail    string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	RefreshToken   string     `gorm:"type:text;not null"`
	AccessToken    string     `gorm:"type:text"`
	TokenExpiry    *time.Time `gorm:"type:timestamptz"`
	MCCAccountID   *string    `gorm:"column:mcc_account_id;type:varchar(20)"`
	IsActive       bool       `gorm:"not null;default:true"`
	LastSyncAt     *time.Time `gorm:"type:timestamptz"`
	LastSyncStatus *string    `gorm:"type:varchar(20)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (GoogleConnectionModel) TableName() string {
	return "google_connections"
}

// ConnectionSummaryRow is the projection used by connection listings.
type ConnectionSummaryRow struct {
	GoogleConnectionModel
	ClientCount int
}
