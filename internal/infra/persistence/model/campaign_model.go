package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignModel is the GORM-specific struct for the 'campaigns' table.
type CampaignModel struct {
	ID               uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClientID         uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_campaigns_client_google"`
	GoogleCampaignID string              `gorm:"type:varchar(32);not null;uniqueIndex:idx_campaigns_client_google"`
	Name             string              `gorm:"type:varchar(255);not null"`
	Status           string              `gorm:"type:varchar(20);not null"`
	ChannelType      *string             `gorm:"type:varchar(50)"`
	DailyBudget      decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	StartDate        *time.Time          `gorm:"type:date"`
	EndDate          *time.Time          `gorm:"type:date"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
