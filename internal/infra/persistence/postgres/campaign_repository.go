package postgres

import (
	"context"

	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/repository"
	"adpulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// UpsertCampaign inserts or refreshes the campaign keyed by (client_id, google_campaign_id).
func (repo *campaignRepository) UpsertCampaign(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "client_id"}, {Name: "google_campaign_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "status", "channel_type", "daily_budget", "start_date", "end_date", "updated_at",
			}),
		}).
		Create(campaignM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert campaign")
	}

	campaign.ID = campaignM.ID
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// FindCampaignByGoogleID resolves the stored campaign for an Ads campaign id.
func (repo *campaignRepository) FindCampaignByGoogleID(ctx context.Context, clientID uuid.UUID, googleCampaignID string) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ? AND google_campaign_id = ?", clientID, googleCampaignID).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by google ID")
	}

	return toCampaignDomain(&campaignM), nil
}

// --- Mapper Functions ---

func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	return &entity.Campaign{
		ID:               data.ID,
		ClientID:         data.ClientID,
		GoogleCampaignID: data.GoogleCampaignID,
		Name:             data.Name,
		Status:           data.Status,
		ChannelType:      derefString(data.ChannelType),
		DailyBudget:      fromNullDecimal(data.DailyBudget),
		StartDate:        data.StartDate,
		EndDate:          data.EndDate,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromCampaignDomain(data *entity.Campaign) *model.CampaignModel {
	if data == nil {
		return nil
	}

	return &model.CampaignModel{
		ID:               data.ID,
		ClientID:         data.ClientID,
		GoogleCampaignID: data.GoogleCampaignID,
		Name:             data.Name,
		Status:           data.Status,
		ChannelType:      nullString(data.ChannelType),
		DailyBudget:      toNullDecimal(data.DailyBudget),
		StartDate:        data.StartDate,
		EndDate:          data.EndDate,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
