package repository

import (
	"context"

	"adpulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCampaignNotFound is returned when no campaign matches the natural key.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository defines persistence for synced campaigns.
type CampaignRepository interface {
	// UpsertCampaign inserts or updates the campaign keyed by (ClientID, GoogleCampaignID).
	UpsertCampaign(ctx context.Context, campaign *entity.Campaign) error

	// FindCampaignByGoogleID resolves the local campaign for an Ads campaign id.
	FindCampaignByGoogleID(ctx context.Context, clientID uuid.UUID, googleCampaignID string) (*entity.Campaign, error)
}
