package entity

import (
	"time"

	"github.com/google/uuid"
)

// MetricsSource records where a metrics row came from.
type MetricsSource string

const (
	MetricsSourceAPI    MetricsSource = "API"
	MetricsSourceManual MetricsSource = "MANUAL"
	MetricsSourceCSV    MetricsSource = "CSV"
)

// DailyMetrics is the account-level performance of a client for one day.
// (ClientID, Date) is unique.
type DailyMetrics struct {
	ID          uuid.UUID     `json:"id"`
	ClientID    uuid.UUID     `json:"clientId"`
	Date        time.Time     `json:"date"`
	Impressions int64         `json:"impressions"`
	Clicks      int64         `json:"clicks"`
	Cost        float64       `json:"cost"`
	Conversions float64       `json:"conversions"`
	CTR         float64       `json:"ctr"`
	CPC         float64       `json:"cpc"`
	ROAS        float64       `json:"roas"`
	Source      MetricsSource `json:"source"`
}

// CampaignMetrics is the performance of a campaign for one day.
// (CampaignID, Date) is unique.
type CampaignMetrics struct {
	ID              uuid.UUID `json:"id"`
	CampaignID      uuid.UUID `json:"campaignId"`
	Date            time.Time `json:"date"`
	Impressions     int64     `json:"impressions"`
	Clicks          int64     `json:"clicks"`
	Cost            float64   `json:"cost"`
	Conversions     float64   `json:"conversions"`
	CTR             float64   `json:"ctr"`
	CPC             float64   `json:"cpc"`
	ImpressionShare *float64  `json:"impressionShare,omitempty"`
}
