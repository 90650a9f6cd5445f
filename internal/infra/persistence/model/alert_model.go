package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel is the GORM-specific struct for the 'alerts' table.
type AlertModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index:idx_alerts_client_type_created"`
	Type      string    `gorm:"type:varchar(20);not null;index:idx_alerts_client_type_created"`
	Message   string    `gorm:"type:text;not null"`
	Severity  string    `gorm:"type:varchar(10);not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index:idx_alerts_client_type_created"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}

// AlertRow is an alert joined with the client's company name.
type AlertRow struct {
	AlertModel
	CompanyName string
}
