package entity

import (
	"time"

	"github.com/google/uuid"
)

// Campaign mirrors an Ads campaign. (ClientID, GoogleCampaignID) is unique.
type Campaign struct {
	ID               uuid.UUID  `json:"id"`
	ClientID         uuid.UUID  `json:"clientId"`
	GoogleCampaignID string     `json:"googleCampaignId"`
	Name             string     `json:"name"`
	Status           string     `json:"status"`
	ChannelType      string     `json:"channelType,omitempty"`
	DailyBudget      *float64   `json:"dailyBudget,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
