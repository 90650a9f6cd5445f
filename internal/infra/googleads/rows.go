package googleads

import (
	"bytes"
	"strconv"

	"adpulse/internal/domain/service"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

var (
	microsExp = int32(-6)
	hundred   = decimal.NewFromInt(100)
)

// int64Value accepts the proto3 JSON encoding of int64, which is a string,
// as well as a bare number.
type int64Value int64

func (v *int64Value) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*v = 0

		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*v = int64Value(n)

	return nil
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchResponse struct {
	Results       []searchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}

type searchRow struct {
	Campaign       *campaignField       `json:"campaign"`
	CampaignBudget *campaignBudgetField `json:"campaignBudget"`
	Metrics        *metricsField        `json:"metrics"`
	Segments       *segmentsField       `json:"segments"`
	CustomerClient *customerClientField `json:"customerClient"`
}

type campaignField struct {
	ID                     int64Value `json:"id"`
	Name                   string     `json:"name"`
	Status                 string     `json:"status"`
	AdvertisingChannelType string     `json:"advertisingChannelType"`
	StartDate              string     `json:"startDate"`
	EndDate                string     `json:"endDate"`
}

type campaignBudgetField struct {
	AmountMicros int64Value `json:"amountMicros"`
}

type metricsField struct {
	Impressions           int64Value `json:"impressions"`
	Clicks                int64Value `json:"clicks"`
	CostMicros            int64Value `json:"costMicros"`
	Conversions           float64    `json:"conversions"`
	Ctr                   float64    `json:"ctr"`
	AverageCpc            float64    `json:"averageCpc"`
	ConversionsValue      float64    `json:"conversionsValue"`
	SearchImpressionShare *float64   `json:"searchImpressionShare"`
}

type segmentsField struct {
	Date string `json:"date"`
}

type customerClientField struct {
	ID              int64Value `json:"id"`
	DescriptiveName string     `json:"descriptiveName"`
	CurrencyCode    string     `json:"currencyCode"`
	Manager         bool       `json:"manager"`
}

func decodeSearchResponse(body []byte) (*searchResponse, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func fromMicros(micros int64) float64 {
	return decimal.New(micros, microsExp).InexactFloat64()
}

func fromFloatMicros(micros float64) float64 {
	return decimal.NewFromFloat(micros).Shift(microsExp).InexactFloat64()
}

func percent(ratio float64) float64 {
	return decimal.NewFromFloat(ratio).Mul(hundred).InexactFloat64()
}

func roas(conversionsValue float64, costMicros int64) float64 {
	if costMicros == 0 {
		return 0
	}

	return decimal.NewFromFloat(conversionsValue).Div(decimal.New(costMicros, microsExp)).InexactFloat64()
}

func toCampaign(row searchRow) service.AdsCampaign {
	c := row.Campaign
	if c == nil {
		c = &campaignField{}
	}

	campaign := service.AdsCampaign{
		ID:          strconv.FormatInt(int64(c.ID), 10),
		Name:        orDefault(c.Name, "Unknown"),
		Status:      orDefault(c.Status, "UNKNOWN"),
		ChannelType: orDefault(c.AdvertisingChannelType, "UNKNOWN"),
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
	}
	// a zero budget is treated as no budget
	if row.CampaignBudget != nil && row.CampaignBudget.AmountMicros != 0 {
		budget := fromMicros(int64(row.CampaignBudget.AmountMicros))
		campaign.DailyBudget = &budget
	}

	return campaign
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func toDailyMetrics(row searchRow) service.AdsDailyMetrics {
	m := row.Metrics
	if m == nil {
		m = &metricsField{}
	}

	var date string
	if row.Segments != nil {
		date = row.Segments.Date
	}

	return service.AdsDailyMetrics{
		Date:        date,
		Impressions: int64(m.Impressions),
		Clicks:      int64(m.Clicks),
		Cost:        fromMicros(int64(m.CostMicros)),
		Conversions: m.Conversions,
		CTR:         percent(m.Ctr),
		CPC:         fromFloatMicros(m.AverageCpc),
		ROAS:        roas(m.ConversionsValue, int64(m.CostMicros)),
	}
}

func toCampaignMetrics(row searchRow) service.AdsCampaignMetrics {
	m := row.Metrics
	if m == nil {
		m = &metricsField{}
	}

	out := service.AdsCampaignMetrics{
		Impressions: int64(m.Impressions),
		Clicks:      int64(m.Clicks),
		Cost:        fromMicros(int64(m.CostMicros)),
		Conversions: m.Conversions,
		CTR:         percent(m.Ctr),
		CPC:         fromFloatMicros(m.AverageCpc),
	}
	if row.Campaign != nil {
		out.CampaignID = strconv.FormatInt(int64(row.Campaign.ID), 10)
		out.CampaignName = row.Campaign.Name
	}
	if row.Segments != nil {
		out.Date = row.Segments.Date
	}
	if m.SearchImpressionShare != nil {
		share := percent(*m.SearchImpressionShare)
		out.ImpressionShare = &share
	}

	return out
}

func toAccount(row searchRow) service.AdsAccount {
	cc := row.CustomerClient
	if cc == nil {
		cc = &customerClientField{}
	}

	account := service.AdsAccount{
		CustomerID:   strconv.FormatInt(int64(cc.ID), 10),
		Name:         cc.DescriptiveName,
		CurrencyCode: cc.CurrencyCode,
		IsManager:    cc.Manager,
	}
	if account.Name == "" {
		account.Name = "Unknown"
	}
	if account.CurrencyCode == "" {
		account.CurrencyCode = "USD"
	}

	return account
}
