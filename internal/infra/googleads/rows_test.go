package googleads

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64Value_AcceptsStringAndNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "quoted", input: `"1234567"`, want: 1234567},
		{name: "bare", input: `42`, want: 42},
		{name: "null", input: `null`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v int64Value
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.Equal(t, tt.want, int64(v))
		})
	}
}

func TestToCampaign_ZeroBudgetIsAbsent(t *testing.T) {
	row := searchRow{
		Campaign:       &campaignField{ID: 9, Name: "Zero"},
		CampaignBudget: &campaignBudgetField{AmountMicros: 0},
	}

	campaign := toCampaign(row)
	assert.Equal(t, "9", campaign.ID)
	assert.Nil(t, campaign.DailyBudget)
}

func TestToCampaign_DefaultsMissingLabels(t *testing.T) {
	campaign := toCampaign(searchRow{Campaign: &campaignField{ID: 7}})
	assert.Equal(t, "Unknown", campaign.Name)
	assert.Equal(t, "UNKNOWN", campaign.Status)
	assert.Equal(t, "UNKNOWN", campaign.ChannelType)

	campaign = toCampaign(searchRow{Campaign: &campaignField{ID: 8, Name: "Brand", Status: "ENABLED", AdvertisingChannelType: "SEARCH"}})
	assert.Equal(t, "Brand", campaign.Name)
	assert.Equal(t, "ENABLED", campaign.Status)
	assert.Equal(t, "SEARCH", campaign.ChannelType)
}

func TestMoneyConversions(t *testing.T) {
	assert.Equal(t, 4200.0, fromMicros(4_200_000_000))
	assert.Equal(t, 0.5, fromFloatMicros(500000))
	assert.Equal(t, 3.0, roas(30, 10_000_000))
	assert.Equal(t, 0.0, roas(30, 0))
	assert.Equal(t, 12.5, percent(0.125))
}

func TestToDailyMetrics_MissingSections(t *testing.T) {
	got := toDailyMetrics(searchRow{})
	assert.Empty(t, got.Date)
	assert.Zero(t, got.Cost)
	assert.Zero(t, got.ROAS)
}
