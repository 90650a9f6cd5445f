package postgres

import (
	"fmt"
	"testing"
	"time"

	"adpulse/internal/domain/entity"
	"adpulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectionMapper_OptionalColumns(t *testing.T) {
	conn := &entity.GoogleConnection{
		ID:          uuid.New(),
		GoogleEmail: "ops@agency.test",
	}

	connM := fromConnectionDomain(conn)
	assert.Nil(t, connM.MCCAccountID)
	assert.Nil(t, connM.LastSyncStatus)

	mcc := "1234567890"
	status := string(entity.SyncStatusFailed)
	connM.MCCAccountID = &mcc
	connM.LastSyncStatus = &status

	back := toConnectionDomain(connM)
	assert.Equal(t, "1234567890", back.MCCAccountID)
	assert.Equal(t, entity.SyncStatusFailed, back.LastSyncStatus)
}

func TestClientMapper_PreloadedConnection(t *testing.T) {
	connID := uuid.New()
	customerID := "1234567890"
	clientM := &model.ClientModel{
		ID:                 uuid.New(),
		CompanyName:        "Acme",
		MonthlyBudget:      decimal.RequireFromString("5000.00"),
		Currency:           "MYR",
		Status:             "ACTIVE",
		GoogleCustomerID:   &customerID,
		GoogleConnectionID: &connID,
		GoogleConnection:   &model.GoogleConnectionModel{ID: connID, IsActive: true},
	}

	client := toClientDomain(clientM)
	assert.Equal(t, 5000.0, client.MonthlyBudget)
	assert.True(t, client.SyncEligible())
	require.NotNil(t, client.GoogleConnection)
	assert.Equal(t, connID, client.GoogleConnection.ID)
}

func TestCampaignMapper_BudgetRoundTrip(t *testing.T) {
	budget := 50.25
	campaign := &entity.Campaign{ClientID: uuid.New(), GoogleCampaignID: "111", DailyBudget: &budget}

	back := toCampaignDomain(fromCampaignDomain(campaign))
	require.NotNil(t, back.DailyBudget)
	assert.Equal(t, 50.25, *back.DailyBudget)

	campaign.DailyBudget = nil
	assert.Nil(t, toCampaignDomain(fromCampaignDomain(campaign)).DailyBudget)
}

func TestDailyMetricsMapper_DefaultsAndDate(t *testing.T) {
	kl := time.FixedZone("MYT", 8*3600)
	metricsM := fromDailyMetricsDomain(&entity.DailyMetrics{
		ClientID: uuid.New(),
		Date:     time.Date(2024, 3, 1, 23, 30, 0, 0, kl),
		Cost:     12.34,
	})

	assert.Equal(t, "API", metricsM.Source)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), metricsM.Date)
	assert.True(t, decimal.RequireFromString("12.34").Equal(metricsM.Cost))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("delete: %w", &pgconn.PgError{Code: "23503"})))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(gorm.ErrRecordNotFound))
}
