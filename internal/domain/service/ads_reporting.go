package service

import (
	"context"

	"github.com/google/uuid"
)

// AdsCampaign is one campaign row from the reporting API.
type AdsCampaign struct {
	ID          string
	Name        string
	Status      string
	ChannelType string
	// DailyBudget is in account currency units, nil when the campaign has no budget.
	DailyBudget *float64
	// StartDate and EndDate are YYYY-MM-DD or empty.
	StartDate string
	EndDate   string
}

// AdsDailyMetrics is the account-level performance for one date.
type AdsDailyMetrics struct {
	Date        string
	Impressions int64
	Clicks      int64
	Cost        float64
	Conversions float64
	// CTR is a percentage.
	CTR  float64
	CPC  float64
	ROAS float64
}

// AdsCampaignMetrics is one (campaign, date) performance row.
type AdsCampaignMetrics struct {
	CampaignID   string
	CampaignName string
	Date         string
	Impressions  int64
	Clicks       int64
	Cost         float64
	Conversions  float64
	CTR          float64
	CPC          float64
	// ImpressionShare is a percentage, nil when the API omits it.
	ImpressionShare *float64
}

// AdsAccount is a customer account reachable from a manager account.
type AdsAccount struct {
	CustomerID   string `json:"customerId"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	IsManager    bool   `json:"isManager"`
}

// AdsReportingClient queries the Google Ads reporting API on behalf of a connection.
// Every failure, including token refresh, is a *ReportingQueryError.
type AdsReportingClient interface {
	ListCampaigns(ctx context.Context, connectionID uuid.UUID, customerID string) ([]AdsCampaign, error)

	// GetDailyMetrics returns one row per date in [startDate, endDate] ascending.
	GetDailyMetrics(ctx context.Context, connectionID uuid.UUID, customerID, startDate, endDate string) ([]AdsDailyMetrics, error)

	GetCampaignMetrics(ctx context.Context, connectionID uuid.UUID, customerID, startDate, endDate string) ([]AdsCampaignMetrics, error)

	// ListAccessibleAccounts lists enabled accounts under the connection's manager account.
	ListAccessibleAccounts(ctx context.Context, connectionID uuid.UUID) ([]AdsAccount, error)
}
