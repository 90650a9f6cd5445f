package postgres

import (
	"context"
	"time"

	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/repository"
	"adpulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var metricColumns = []string{"impressions", "clicks", "cost", "conversions", "ctr", "cpc", "updated_at"}

// metricsRepository implements the repository.MetricsRepository interface.
type metricsRepository struct {
	db *gorm.DB
}

// NewMetricsRepository is the constructor for metricsRepository.
func NewMetricsRepository(db *gorm.DB) repository.MetricsRepository {
	return &metricsRepository{
		db: db,
	}
}

// UpsertDailyMetrics writes the client's totals for one day. Re-syncing a day overwrites it.
func (repo *metricsRepository) UpsertDailyMetrics(ctx context.Context, metrics *entity.DailyMetrics) error {
	metricsM := fromDailyMetricsDomain(metrics)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns(append([]string{"roas", "source"}, metricColumns...)),
		}).
		Create(metricsM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert daily metrics")
	}

	metrics.ID = metricsM.ID

	return nil
}

// UpsertCampaignMetrics writes one campaign's figures for one day.
func (repo *metricsRepository) UpsertCampaignMetrics(ctx context.Context, metrics *entity.CampaignMetrics) error {
	metricsM := fromCampaignMetricsDomain(metrics)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "campaign_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns(append([]string{"impression_share"}, metricColumns...)),
		}).
		Create(metricsM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert campaign metrics")
	}

	metrics.ID = metricsM.ID

	return nil
}

// SumCostSince totals daily cost for the client from since onwards. No rows sum to zero.
func (repo *metricsRepository) SumCostSince(ctx context.Context, clientID uuid.UUID, since time.Time) (float64, error) {
	var total decimal.Decimal

	row := repo.db.WithContext(ctx).
		Model(&model.DailyMetricsModel{}).
		Select("COALESCE(SUM(cost), 0)").
		Where("client_id = ? AND date >= ?", clientID, dateOnly(since)).
		Row()
	if err := row.Scan(&total); err != nil {
		return 0, errors.Wrap(err, "failed to sum daily cost")
	}

	return total.InexactFloat64(), nil
}

// --- Mapper Functions ---

func fromDailyMetricsDomain(data *entity.DailyMetrics) *model.DailyMetricsModel {
	source := data.Source
	if source == "" {
		source = entity.MetricsSourceAPI
	}

	return &model.DailyMetricsModel{
		ID:          data.ID,
		ClientID:    data.ClientID,
		Date:        dateOnly(data.Date),
		Impressions: data.Impressions,
		Clicks:      data.Clicks,
		Cost:        decimal.NewFromFloat(data.Cost),
		Conversions: decimal.NewFromFloat(data.Conversions),
		CTR:         decimal.NewFromFloat(data.CTR),
		CPC:         decimal.NewFromFloat(data.CPC),
		ROAS:        decimal.NewFromFloat(data.ROAS),
		Source:      string(source),
	}
}

func fromCampaignMetricsDomain(data *entity.CampaignMetrics) *model.CampaignMetricsModel {
	return &model.CampaignMetricsModel{
		ID:              data.ID,
		CampaignID:      data.CampaignID,
		Date:            dateOnly(data.Date),
		Impressions:     data.Impressions,
		Clicks:          data.Clicks,
		Cost:            decimal.NewFromFloat(data.Cost),
		Conversions:     decimal.NewFromFloat(data.Conversions),
		CTR:             decimal.NewFromFloat(data.CTR),
		CPC:             decimal.NewFromFloat(data.CPC),
		ImpressionShare: toNullDecimal(data.ImpressionShare),
	}
}
