package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "adpulse/internal/delivery/context"
	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/service"
	mockRepo "adpulse/internal/mocks/repository"
	mockSvc "adpulse/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var alertNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

// alertServiceFixtures holds all test dependencies for alert service tests.
type alertServiceFixtures struct {
	service   *alertService
	store     *memStore
	publisher *mockSvc.MockEventPublisher
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	store := newMemStore()
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewAlertService(AlertServiceParams{
		ClientRepo:  store,
		MetricsRepo: store,
		AlertRepo:   store,
		Publisher:   publisher,
		SyncMetrics: noopSyncMetrics{},
		Logger:      newDiscardLogger(),
	}).(*alertService)
	svc.now = func() time.Time { return alertNow }

	return alertServiceFixtures{
		service:   svc,
		store:     store,
		publisher: publisher,
	}
}

func (s *memStore) addSpend(clientID uuid.UUID, date time.Time, cost float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dailyMetrics[dayKey{clientID, date.Format(time.DateOnly)}] = &entity.DailyMetrics{ClientID: clientID, Date: date, Cost: cost}
}

func TestAlertService_CheckAndCreateAlerts_BudgetScenario(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	client := fx.store.addClient(fx.store.addConnection(), "1234567890", 5000)
	fx.store.addSpend(client.ID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 2000)
	fx.store.addSpend(client.ID, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 2200)
	// Last month does not count.
	fx.store.addSpend(client.ID, time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), 9000)

	fx.publisher.EXPECT().
		PublishAlertEvent(mock.Anything, mock.MatchedBy(func(e *service.AlertEvent) bool {
			return e.Type == "BUDGET_80" && e.RequestID == "req-1" && e.ClientID == client.ID.String()
		})).
		Return(nil).Once()

	require.NoError(t, fx.service.CheckAndCreateAlerts(ctx, client.ID))

	require.Len(t, fx.store.alerts, 1)
	alert := fx.store.alerts[0]
	assert.Equal(t, entity.AlertTypeBudget80, alert.Type)
	assert.Equal(t, entity.AlertSeverityMedium, alert.Severity)
	assert.Equal(t, "Budget at 80%: MYR4200 / MYR5000", alert.Message)
	assert.False(t, alert.IsRead)
}

func TestAlertService_CheckAndCreateAlerts_ThresholdPrecedence(t *testing.T) {
	tests := []struct {
		name         string
		spend        float64
		wantType     entity.AlertType
		wantSeverity entity.AlertSeverity
		wantMessage  string
	}{
		{
			name:         "95 percent",
			spend:        950,
			wantType:     entity.AlertTypeBudget90,
			wantSeverity: entity.AlertSeverityHigh,
			wantMessage:  "Budget at 90%: MYR950 / MYR1000",
		},
		{
			name:         "exactly 100 percent",
			spend:        1000,
			wantType:     entity.AlertTypeBudget100,
			wantSeverity: entity.AlertSeverityCritical,
			wantMessage:  "Budget exceeded: MYR1000 / MYR1000",
		},
		{
			name:         "over budget rounds spend",
			spend:        1234.5,
			wantType:     entity.AlertTypeBudget100,
			wantSeverity: entity.AlertSeverityCritical,
			wantMessage:  "Budget exceeded: MYR1235 / MYR1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAlertService(t)
			client := fx.store.addClient(fx.store.addConnection(), "1234567890", 1000)
			fx.store.addSpend(client.ID, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), tt.spend)
			fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil).Once()

			require.NoError(t, fx.service.CheckAndCreateAlerts(context.Background(), client.ID))

			require.Len(t, fx.store.alerts, 1)
			assert.Equal(t, tt.wantType, fx.store.alerts[0].Type)
			assert.Equal(t, tt.wantSeverity, fx.store.alerts[0].Severity)
			assert.Equal(t, tt.wantMessage, fx.store.alerts[0].Message)
		})
	}
}

func TestAlertService_CheckAndCreateAlerts_SuppressedWithinMonth(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	client := fx.store.addClient(fx.store.addConnection(), "1234567890", 1000)
	fx.store.addSpend(client.ID, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 850)
	fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, fx.service.CheckAndCreateAlerts(ctx, client.ID))
	require.NoError(t, fx.service.CheckAndCreateAlerts(ctx, client.ID))

	assert.Len(t, fx.store.alerts, 1)
}

func TestAlertService_CheckAndCreateAlerts_HigherThresholdAfterLower(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	client := fx.store.addClient(fx.store.addConnection(), "1234567890", 1000)
	fx.store.addSpend(client.ID, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 850)
	fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil).Twice()

	require.NoError(t, fx.service.CheckAndCreateAlerts(ctx, client.ID))
	fx.store.addSpend(client.ID, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), 100)
	require.NoError(t, fx.service.CheckAndCreateAlerts(ctx, client.ID))

	require.Len(t, fx.store.alerts, 2)
	assert.Equal(t, entity.AlertTypeBudget80, fx.store.alerts[0].Type)
	assert.Equal(t, entity.AlertTypeBudget90, fx.store.alerts[1].Type)
}

func TestAlertService_CheckAndCreateAlerts_LastMonthAlertDoesNotSuppress(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	client := fx.store.addClient(fx.store.addConnection(), "1234567890", 1000)
	fx.store.alerts = append(fx.store.alerts, &entity.Alert{
		ID:        uuid.New(),
		ClientID:  client.ID,
		Type:      entity.AlertTypeBudget80,
		CreatedAt: time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC),
	})
	fx.store.addSpend(client.ID, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 820)
	fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, fx.service.CheckAndCreateAlerts(ctx, client.ID))

	assert.Len(t, fx.store.alerts, 2)
}

func TestAlertService_CheckAndCreateAlerts_NoOps(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	zeroBudget := fx.store.addClient(fx.store.addConnection(), "1", 0)
	fx.store.addSpend(zeroBudget.ID, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 500)

	underBudget := fx.store.addClient(fx.store.addConnection(), "2", 1000)
	fx.store.addSpend(underBudget.ID, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 799.99)

	require.NoError(t, fx.service.CheckAndCreateAlerts(ctx, zeroBudget.ID))
	require.NoError(t, fx.service.CheckAndCreateAlerts(ctx, underBudget.ID))
	require.NoError(t, fx.service.CheckAndCreateAlerts(ctx, uuid.New()))

	assert.Empty(t, fx.store.alerts)
}

func TestAlertService_CheckAndCreateAlerts_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestAlertService(t)

	client := fx.store.addClient(fx.store.addConnection(), "1234567890", 1000)
	fx.store.addSpend(client.ID, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 900)
	fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	require.NoError(t, fx.service.CheckAndCreateAlerts(context.Background(), client.ID))
	assert.Len(t, fx.store.alerts, 1)
}

func TestAlertService_CheckAndCreateAlerts_PropagatesRepositoryErrors(t *testing.T) {
	clientRepo := mockRepo.NewMockClientRepository(t)
	metricsRepo := mockRepo.NewMockMetricsRepository(t)
	svc := NewAlertService(AlertServiceParams{
		ClientRepo:  clientRepo,
		MetricsRepo: metricsRepo,
		AlertRepo:   mockRepo.NewMockAlertRepository(t),
		Publisher:   mockSvc.NewMockEventPublisher(t),
		SyncMetrics: noopSyncMetrics{},
		Logger:      newDiscardLogger(),
	})

	clientID := uuid.New()
	clientRepo.EXPECT().FindClientByID(mock.Anything, clientID).Return(&entity.Client{ID: clientID, MonthlyBudget: 1000}, nil)
	metricsRepo.EXPECT().SumCostSince(mock.Anything, clientID, mock.AnythingOfType("time.Time")).Return(0, errors.New("db down"))

	err := svc.CheckAndCreateAlerts(context.Background(), clientID)
	assert.ErrorContains(t, err, "db down")
}

func TestAlertService_ListAlerts_DefaultLimit(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	svc := NewAlertService(AlertServiceParams{AlertRepo: alertRepo, Logger: newDiscardLogger()})

	alertRepo.EXPECT().
		ListAlerts(mock.Anything, entity.AlertFilter{UnreadOnly: true, Limit: defaultAlertLimit}).
		Return([]*entity.Alert{}, nil)

	alerts, err := svc.ListAlerts(context.Background(), entity.AlertFilter{UnreadOnly: true})
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestAlertService_MarkAlertRead(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	owner := uuid.New()
	alert := &entity.Alert{ClientID: owner, Type: entity.AlertTypeBudget80}
	require.NoError(t, fx.store.CreateAlert(ctx, alert))

	updated, err := fx.service.MarkAlertRead(ctx, alert.ID, true, nil)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)

	other := uuid.New()
	_, err = fx.service.MarkAlertRead(ctx, alert.ID, false, &other)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	updated, err = fx.service.MarkAlertRead(ctx, alert.ID, false, &owner)
	require.NoError(t, err)
	assert.False(t, updated.IsRead)

	_, err = fx.service.MarkAlertRead(ctx, uuid.New(), true, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrAlertNotFound))
}

func TestAlertService_CheckAndCreateAlerts_PushesNotification(t *testing.T) {
	fx := createTestAlertService(t)
	notifier := mockSvc.NewMockAlertNotifier(t)
	fx.service.notifier = notifier

	client := fx.store.addClient(fx.store.addConnection(), "1234567890", 1000)
	fx.store.addSpend(client.ID, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), 1000)

	fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil).Once()
	notifier.EXPECT().
		NotifyAlert(mock.Anything, mock.MatchedBy(func(a *entity.Alert) bool {
			return a.ClientID == client.ID && a.Type == entity.AlertTypeBudget100
		})).
		Return(errors.New("fcm unavailable")).Once()

	require.NoError(t, fx.service.CheckAndCreateAlerts(context.Background(), client.ID))
	assert.Len(t, fx.store.alerts, 1)
}
