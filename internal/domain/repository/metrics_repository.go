package repository

import (
	"context"
	"time"

	"adpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// MetricsRepository defines persistence for daily and campaign metrics.
type MetricsRepository interface {
	// UpsertDailyMetrics inserts or updates the row keyed by (ClientID, Date).
	UpsertDailyMetrics(ctx context.Context, metrics *entity.DailyMetrics) error

	// UpsertCampaignMetrics inserts or updates the row keyed by (CampaignID, Date).
	UpsertCampaignMetrics(ctx context.Context, metrics *entity.CampaignMetrics) error

	// SumCostSince totals DailyMetrics.Cost for a client from since (inclusive).
	SumCostSince(ctx context.Context, clientID uuid.UUID, since time.Time) (float64, error)
}
