package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyMetricsModel is the GORM-specific struct for the 'daily_metrics' table.
// One row per client and day.
type DailyMetricsModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_metrics_client_date"`
	Date        time.Time       `gorm:"type:date;not null;uniqueIndex:idx_daily_metrics_client_date"`
	Impressions int64           `gorm:"not null;default:0"`
	Clicks      int64           `gorm:"not null;default:0"`
	Cost        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Conversions decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CTR         decimal.Decimal `gorm:"column:ctr;type:numeric(8,4);not null;default:0"`
	CPC         decimal.Decimal `gorm:"column:cpc;type:numeric(12,4);not null;default:0"`
	ROAS        decimal.Decimal `gorm:"column:roas;type:numeric(12,4);not null;default:0"`
	Source      string          `gorm:"type:varchar(10);not null;default:'API'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailyMetricsModel) TableName() string {
	return "daily_metrics"
}

// CampaignMetricsModel is the GORM-specific struct for the 'campaign_metrics' table.
type CampaignMetricsModel struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CampaignID      uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_campaign_metrics_campaign_date"`
	Date            time.Time           `gorm:"type:date;not null;uniqueIndex:idx_campaign_metrics_campaign_date"`
	Impressions     int64               `gorm:"not null;default:0"`
	Clicks          int64               `gorm:"not null;default:0"`
	Cost            decimal.Decimal     `gorm:"type:numeric(12,2);not null;default:0"`
	Conversions     decimal.Decimal     `gorm:"type:numeric(12,2);not null;default:0"`
	CTR             decimal.Decimal     `gorm:"column:ctr;type:numeric(8,4);not null;default:0"`
	CPC             decimal.Decimal     `gorm:"column:cpc;type:numeric(12,4);not null;default:0"`
	ImpressionShare decimal.NullDecimal `gorm:"type:numeric(8,4)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignMetricsModel) TableName() string {
	return "campaign_metrics"
}
