package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"adpulse/internal/domain/entity"
	"adpulse/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type campaignKey struct {
	clientID         uuid.UUID
	googleCampaignID string
}

type dayKey struct {
	ownerID uuid.UUID
	date    string
}

// memStore is an in-memory stand-in for the Postgres repositories that keeps
// the same natural-key upsert semantics.
type memStore struct {
	// Only UpdateSyncStatus is implemented; other connection calls are not expected.
	repository.ConnectionRepository

	mu sync.Mutex

	clients         map[uuid.UUID]*entity.Client
	connections     map[uuid.UUID]*entity.GoogleConnection
	campaigns       map[campaignKey]*entity.Campaign
	dailyMetrics    map[dayKey]*entity.DailyMetrics
	campaignMetrics map[dayKey]*entity.CampaignMetrics
	syncLogs        map[uuid.UUID]*entity.SyncLog
	alerts          []*entity.Alert

	failUpsertCampaignMetrics error
	failFindSyncable          error
}

func newMemStore() *memStore {
	return &memStore{
		clients:         make(map[uuid.UUID]*entity.Client),
		connections:     make(map[uuid.UUID]*entity.GoogleConnection),
		campaigns:       make(map[campaignKey]*entity.Campaign),
		dailyMetrics:    make(map[dayKey]*entity.DailyMetrics),
		campaignMetrics: make(map[dayKey]*entity.CampaignMetrics),
		syncLogs:        make(map[uuid.UUID]*entity.SyncLog),
	}
}

func (s *memStore) addConnection() *entity.GoogleConnection {
	s.mu.Lock()
	defer s.mu.Unlock()

	conn := &entity.GoogleConnection{ID: uuid.New(), GoogleEmail: uuid.NewString() + "@agency.test", IsActive: true}
	s.connections[conn.ID] = conn

	return conn
}

func (s *memStore) addClient(conn *entity.GoogleConnection, customerID string, budget float64) *entity.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	client := &entity.Client{
		ID:               uuid.New(),
		CompanyName:      "Client " + customerID,
		MonthlyBudget:    budget,
		Currency:         "MYR",
		Status:           entity.ClientStatusActive,
		GoogleCustomerID: customerID,
	}
	if conn != nil {
		id := conn.ID
		client.GoogleConnectionID = &id
	}
	s.clients[client.ID] = client

	return client
}

// --- ClientRepository ---

func (s *memStore) FindClientByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[id]
	if !ok {
		return nil, repository.ErrClientNotFound
	}
	copied := *client
	if client.GoogleConnectionID != nil {
		if conn, ok := s.connections[*client.GoogleConnectionID]; ok {
			c := *conn
			copied.GoogleConnection = &c
		}
	}

	return &copied, nil
}

func (s *memStore) FindSyncableClients(ctx context.Context) ([]*entity.Client, error) {
	s.mu.Lock()
	if s.failFindSyncable != nil {
		s.mu.Unlock()

		return nil, s.failFindSyncable
	}
	ids := make([]uuid.UUID, 0, len(s.clients))
	for id := range s.clients {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	var out []*entity.Client
	for _, id := range ids {
		client, _ := s.FindClientByID(ctx, id)
		if client.SyncEligible() {
			out = append(out, client)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompanyName < out[j].CompanyName })

	return out, nil
}

func (s *memStore) CountClientsByConnection(_ context.Context, connectionID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, client := range s.clients {
		if client.GoogleConnectionID != nil && *client.GoogleConnectionID == connectionID {
			n++
		}
	}

	return n, nil
}

// --- CampaignRepository ---

func (s *memStore) UpsertCampaign(_ context.Context, campaign *entity.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := campaignKey{campaign.ClientID, campaign.GoogleCampaignID}
	if existing, ok := s.campaigns[key]; ok {
		campaign.ID = existing.ID
	} else {
		campaign.ID = uuid.New()
	}
	stored := *campaign
	s.campaigns[key] = &stored

	return nil
}

func (s *memStore) FindCampaignByGoogleID(_ context.Context, clientID uuid.UUID, googleCampaignID string) (*entity.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign, ok := s.campaigns[campaignKey{clientID, googleCampaignID}]
	if !ok {
		return nil, repository.ErrCampaignNotFound
	}
	copied := *campaign

	return &copied, nil
}

// --- MetricsRepository ---

func (s *memStore) UpsertDailyMetrics(_ context.Context, metrics *entity.DailyMetrics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *metrics
	s.dailyMetrics[dayKey{metrics.ClientID, metrics.Date.Format(time.DateOnly)}] = &stored

	return nil
}

func (s *memStore) UpsertCampaignMetrics(_ context.Context, metrics *entity.CampaignMetrics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failUpsertCampaignMetrics != nil {
		return s.failUpsertCampaignMetrics
	}
	stored := *metrics
	s.campaignMetrics[dayKey{metrics.CampaignID, metrics.Date.Format(time.DateOnly)}] = &stored

	return nil
}

func (s *memStore) SumCostSince(_ context.Context, clientID uuid.UUID, since time.Time) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for key, m := range s.dailyMetrics {
		if key.ownerID == clientID && !m.Date.Before(since) {
			total += m.Cost
		}
	}

	return total, nil
}

// --- SyncLogRepository ---

func (s *memStore) CreateSyncLog(_ context.Context, log *entity.SyncLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.ID = uuid.New()
	stored := *log
	s.syncLogs[log.ID] = &stored

	return nil
}

func (s *memStore) CompleteSyncLog(_ context.Context, id uuid.UUID, status entity.SyncLogStatus, recordsCount int, errMsg string, completedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.syncLogs[id]
	log.Status = status
	log.RecordsCount = recordsCount
	log.Error = errMsg
	log.CompletedAt = &completedAt

	return nil
}

func (s *memStore) ListRecentSyncLogs(_ context.Context, _ *uuid.UUID, _ int) ([]*entity.SyncLog, error) {
	return nil, nil
}

// --- ConnectionRepository (the parts the sync touches) ---

func (s *memStore) UpdateSyncStatus(_ context.Context, id uuid.UUID, status entity.SyncStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conn := s.connections[id]
	conn.LastSyncStatus = status
	conn.LastSyncAt = &at

	return nil
}

// --- AlertRepository ---

func (s *memStore) ExistsAlertSince(_ context.Context, clientID uuid.UUID, alertType entity.AlertType, since time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, alert := range s.alerts {
		if alert.ClientID == clientID && alert.Type == alertType && !alert.CreatedAt.Before(since) {
			return true, nil
		}
	}

	return false, nil
}

func (s *memStore) FindAlertByID(_ context.Context, id uuid.UUID) (*entity.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, alert := range s.alerts {
		if alert.ID == id {
			copied := *alert

			return &copied, nil
		}
	}

	return nil, repository.ErrAlertNotFound
}

func (s *memStore) CreateAlert(_ context.Context, alert *entity.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert.ID = uuid.New()
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	stored := *alert
	s.alerts = append(s.alerts, &stored)

	return nil
}

func (s *memStore) ListAlerts(_ context.Context, _ entity.AlertFilter) ([]*entity.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*entity.Alert(nil), s.alerts...), nil
}

func (s *memStore) UpdateAlertRead(ctx context.Context, id uuid.UUID, isRead bool) (*entity.Alert, error) {
	s.mu.Lock()
	for _, alert := range s.alerts {
		if alert.ID == id {
			alert.IsRead = isRead
		}
	}
	s.mu.Unlock()

	return s.FindAlertByID(ctx, id)
}

func (s *memStore) syncLogList() []*entity.SyncLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.SyncLog, 0, len(s.syncLogs))
	for _, log := range s.syncLogs {
		copied := *log
		out = append(out, &copied)
	}

	return out
}

// noopSyncMetrics discards observations.
type noopSyncMetrics struct{}

func (noopSyncMetrics) ObserveSync(bool, int, time.Duration) {}
func (noopSyncMetrics) ObserveSweep(int, int, int)           {}
func (noopSyncMetrics) IncAlert(string)                      {}
