package googleads

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"adpulse/config"
	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/service"
	"adpulse/internal/errors"
	"adpulse/internal/infra/lock"
	"adpulse/internal/infra/metrics"
	mockRepo "adpulse/internal/mocks/repository"
	mockSvc "adpulse/internal/mocks/service"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type testFixtures struct {
	connections *mockRepo.MockConnectionRepository
	vault       *mockSvc.MockTokenVault
	oauth       *mockSvc.MockOAuthService
}

func newTestClient(t *testing.T, baseURL string, mutate func(*config.Config)) (*Client, testFixtures) {
	t.Helper()

	fx := testFixtures{
		connections: mockRepo.NewMockConnectionRepository(t),
		vault:       mockSvc.NewMockTokenVault(t),
		oauth:       mockSvc.NewMockOAuthService(t),
	}

	cfg := &config.Config{
		GoogleAds: &config.GoogleAdsConfig{
			DeveloperToken: "dev-token",
			BaseURL:        baseURL,
			APIVersion:     "v18",
			RequestTimeout: 5 * time.Second,
			Breaker: config.BreakerConfig{
				FailureThreshold: 3,
				OpenTimeout:      time.Minute,
				MaxHalfOpen:      1,
			},
		},
		Sync: &config.SyncConfig{RefreshLockTTL: time.Second},
	}
	if mutate != nil {
		mutate(cfg)
	}

	client := newClient(ClientParams{
		Config:      cfg,
		Connections: fx.connections,
		Vault:       fx.vault,
		OAuth:       fx.oauth,
		Locker:      lock.NewLocalLocker(),
		Metrics:     metrics.New(prometheus.NewRegistry()),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	client.now = func() time.Time { return fixedNow }

	return client, fx
}

func validConnection(id uuid.UUID) *entity.GoogleConnection {
	expiry := fixedNow.Add(30 * time.Minute)

	return &entity.GoogleConnection{
		ID:           id,
		GoogleEmail:  "ops@agency.test",
		RefreshToken: "encrypted",
		AccessToken:  "cached-token",
		TokenExpiry:  &expiry,
		MCCAccountID: "987-654-3210",
		IsActive:     true,
	}
}

func decodeQuery(t *testing.T, r *http.Request) searchRequest {
	t.Helper()

	var req searchRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

	return req
}

func TestClient_ListCampaigns_HeadersAndMapping(t *testing.T) {
	connID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v18/customers/1234567890/googleAds:search", r.URL.Path)
		assert.Equal(t, "Bearer cached-token", r.Header.Get("Authorization"))
		assert.Equal(t, "dev-token", r.Header.Get("developer-token"))
		assert.Equal(t, "9876543210", r.Header.Get("login-customer-id"))

		req := decodeQuery(t, r)
		assert.Equal(t, campaignsQuery, req.Query)

		_, _ = io.WriteString(w, `{"results":[
			{"campaign":{"id":"111","name":"Brand","status":"ENABLED","advertisingChannelType":"SEARCH","startDate":"2024-01-01"},"campaignBudget":{"amountMicros":"50000000"}},
			{"campaign":{"id":"222","name":"Display","status":"PAUSED","advertisingChannelType":"DISPLAY","endDate":"2024-12-31"}}
		]}`)
	}))
	defer server.Close()

	client, fx := newTestClient(t, server.URL, nil)
	fx.connections.EXPECT().FindConnectionByID(mock.Anything, connID).Return(validConnection(connID), nil)

	campaigns, err := client.ListCampaigns(context.Background(), connID, "123-456-7890")
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	assert.Equal(t, "111", campaigns[0].ID)
	assert.Equal(t, "SEARCH", campaigns[0].ChannelType)
	require.NotNil(t, campaigns[0].DailyBudget)
	assert.Equal(t, 50.0, *campaigns[0].DailyBudget)
	assert.Equal(t, "2024-01-01", campaigns[0].StartDate)

	assert.Nil(t, campaigns[1].DailyBudget)
	assert.Equal(t, "2024-12-31", campaigns[1].EndDate)
}

func TestClient_GetDailyMetrics_FollowsPagesAndConverts(t *testing.T) {
	connID := uuid.New()
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		req := decodeQuery(t, r)
		assert.Equal(t, dailyMetricsQuery("2024-02-14", "2024-03-15"), req.Query)

		switch req.PageToken {
		case "":
			_, _ = io.WriteString(w, `{"results":[{"segments":{"date":"2024-03-01"},"metrics":{"impressions":"1000","clicks":"50","costMicros":"1230000","conversions":2,"ctr":0.05,"averageCpc":24600,"conversionsValue":12.3}}],"nextPageToken":"page-2"}`)
		case "page-2":
			_, _ = io.WriteString(w, `{"results":[{"segments":{"date":"2024-03-02"},"metrics":{"impressions":"10","clicks":"0","costMicros":"0","conversions":0,"ctr":0,"averageCpc":0,"conversionsValue":5}}]}`)
		default:
			t.Errorf("unexpected page token %q", req.PageToken)
		}
	}))
	defer server.Close()

	client, fx := newTestClient(t, server.URL, nil)
	fx.connections.EXPECT().FindConnectionByID(mock.Anything, connID).Return(validConnection(connID), nil)

	rows, err := client.GetDailyMetrics(context.Background(), connID, "1234567890", "2024-02-14", "2024-03-15")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	first := rows[0]
	assert.Equal(t, "2024-03-01", first.Date)
	assert.Equal(t, int64(1000), first.Impressions)
	assert.Equal(t, int64(50), first.Clicks)
	assert.Equal(t, 1.23, first.Cost)
	assert.Equal(t, 5.0, first.CTR)
	assert.Equal(t, 0.0246, first.CPC)
	assert.Equal(t, 10.0, first.ROAS)

	assert.Equal(t, 0.0, rows[1].ROAS, "zero cost yields zero ROAS")
}

func TestClient_GetCampaignMetrics_ImpressionShare(t *testing.T) {
	connID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"results":[
			{"campaign":{"id":"111","name":"Brand"},"segments":{"date":"2024-03-01"},"metrics":{"impressions":"5","clicks":"1","costMicros":"500000","ctr":0.2,"averageCpc":500000,"searchImpressionShare":0.45}},
			{"campaign":{"id":"222","name":"Display"},"segments":{"date":"2024-03-01"},"metrics":{"impressions":"7"}}
		]}`)
	}))
	defer server.Close()

	client, fx := newTestClient(t, server.URL, nil)
	fx.connections.EXPECT().FindConnectionByID(mock.Anything, connID).Return(validConnection(connID), nil)

	rows, err := client.GetCampaignMetrics(context.Background(), connID, "1234567890", "2024-03-01", "2024-03-01")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "111", rows[0].CampaignID)
	require.NotNil(t, rows[0].ImpressionShare)
	assert.Equal(t, 45.0, *rows[0].ImpressionShare)
	assert.Equal(t, 20.0, rows[0].CTR)
	assert.Equal(t, 0.5, rows[0].CPC)

	assert.Nil(t, rows[1].ImpressionShare)
}

func TestClient_RefreshesExpiredTokenBeforeQuery(t *testing.T) {
	connID := uuid.New()
	past := fixedNow.Add(-time.Minute)
	stale := &entity.GoogleConnection{
		ID:           connID,
		RefreshToken: "encrypted-refresh",
		TokenExpiry:  &past,
		IsActive:     true,
	}

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(step string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, step)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record("query")
		assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("login-customer-id"))
		_, _ = io.WriteString(w, `{"results":[]}`)
	}))
	defer server.Close()

	client, fx := newTestClient(t, server.URL, nil)
	fx.connections.EXPECT().FindConnectionByID(mock.Anything, connID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.GoogleConnection, error) {
			copied := *stale

			return &copied, nil
		})
	fx.vault.EXPECT().Decrypt("encrypted-refresh").Return("plain-refresh", nil).Once()
	fx.oauth.EXPECT().RefreshAccessToken(mock.Anything, "plain-refresh").
		Return(&service.TokenResponse{AccessToken: "fresh-token", ExpiresIn: 3600}, nil).Once()
	fx.connections.EXPECT().UpdateAccessToken(mock.Anything, connID, "fresh-token", fixedNow.Add(time.Hour)).
		Run(func(context.Context, uuid.UUID, string, time.Time) { record("persist") }).
		Return(nil).Once()

	_, err := client.ListCampaigns(context.Background(), connID, "1234567890")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"persist", "query"}, order)
}

func TestClient_RefreshFailureIsReportingQueryError(t *testing.T) {
	connID := uuid.New()
	stale := &entity.GoogleConnection{ID: connID, RefreshToken: "encrypted-refresh", IsActive: true}

	client, fx := newTestClient(t, "http://unused.invalid", nil)
	fx.connections.EXPECT().FindConnectionByID(mock.Anything, connID).Return(stale, nil)
	fx.vault.EXPECT().Decrypt("encrypted-refresh").Return("plain-refresh", nil)
	fx.oauth.EXPECT().RefreshAccessToken(mock.Anything, "plain-refresh").
		Return(nil, &domainerrors.OAuthExchangeError{Op: "refresh", Status: 400, Body: "invalid_grant"})

	_, err := client.ListCampaigns(context.Background(), connID, "1234567890")

	var queryErr *domainerrors.ReportingQueryError
	require.True(t, errors.As(err, &queryErr))
	assert.Equal(t, opCampaigns, queryErr.Op)

	var exchangeErr *domainerrors.OAuthExchangeError
	assert.True(t, errors.As(err, &exchangeErr))
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestClient_TamperedRefreshTokenSurfacesIntegrityError(t *testing.T) {
	connID := uuid.New()
	stale := &entity.GoogleConnection{ID: connID, RefreshToken: "garbage", IsActive: true}

	client, fx := newTestClient(t, "http://unused.invalid", nil)
	fx.connections.EXPECT().FindConnectionByID(mock.Anything, connID).Return(stale, nil)
	fx.vault.EXPECT().Decrypt("garbage").Return("", domainerrors.ErrIntegrity)

	_, err := client.GetDailyMetrics(context.Background(), connID, "1234567890", "2024-03-01", "2024-03-02")
	assert.True(t, errors.Is(err, domainerrors.ErrIntegrity))
}

func TestClient_APIErrorKeepsBodyVerbatim(t *testing.T) {
	connID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"status":"PERMISSION_DENIED"}}`)
	}))
	defer server.Close()

	client, fx := newTestClient(t, server.URL, nil)
	fx.connections.EXPECT().FindConnectionByID(mock.Anything, connID).Return(validConnection(connID), nil)

	_, err := client.ListCampaigns(context.Background(), connID, "1234567890")

	var queryErr *domainerrors.ReportingQueryError
	require.True(t, errors.As(err, &queryErr))
	assert.Contains(t, err.Error(), `{"error":{"status":"PERMISSION_DENIED"}}`)
	assert.Equal(t, "1234567890", queryErr.CustomerID)
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	connID := uuid.New()
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, fx := newTestClient(t, server.URL, func(cfg *config.Config) {
		cfg.GoogleAds.Breaker.FailureThreshold = 2
	})
	fx.connections.EXPECT().FindConnectionByID(mock.Anything, connID).Return(validConnection(connID), nil)

	for i := 0; i < 2; i++ {
		_, err := client.ListCampaigns(context.Background(), connID, "1234567890")
		require.Error(t, err)
	}

	_, err := client.ListCampaigns(context.Background(), connID, "1234567890")
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	connID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client, fx := newTestClient(t, server.URL, func(cfg *config.Config) {
		cfg.GoogleAds.Breaker.FailureThreshold = 1
	})
	fx.connections.EXPECT().FindConnectionByID(mock.Anything, connID).Return(validConnection(connID), nil)

	for i := 0; i < 3; i++ {
		_, err := client.ListCampaigns(context.Background(), connID, "1234567890")
		require.Error(t, err)
		assert.False(t, errors.Is(err, gobreaker.ErrOpenState))
	}
}

func TestClient_ListAccessibleAccounts(t *testing.T) {
	connID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v18/customers/9876543210/googleAds:search", r.URL.Path)
		assert.Equal(t, "9876543210", r.Header.Get("login-customer-id"))
		assert.Equal(t, accessibleAccountsQuery, decodeQuery(t, r).Query)

		_, _ = io.WriteString(w, `{"results":[
			{"customerClient":{"id":"1234567890","descriptiveName":"Acme","currencyCode":"MYR","manager":false}},
			{"customerClient":{"id":"555"}}
		]}`)
	}))
	defer server.Close()

	client, fx := newTestClient(t, server.URL, nil)
	fx.connections.EXPECT().FindConnectionByID(mock.Anything, connID).Return(validConnection(connID), nil)

	accounts, err := client.ListAccessibleAccounts(context.Background(), connID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, service.AdsAccount{CustomerID: "1234567890", Name: "Acme", CurrencyCode: "MYR"}, accounts[0])
	assert.Equal(t, "Unknown", accounts[1].Name)
	assert.Equal(t, "USD", accounts[1].CurrencyCode)
}

func TestClient_ListAccessibleAccounts_RequiresManager(t *testing.T) {
	connID := uuid.New()
	conn := validConnection(connID)
	conn.MCCAccountID = ""

	client, fx := newTestClient(t, "http://unused.invalid", nil)
	fx.connections.EXPECT().FindConnectionByID(mock.Anything, connID).Return(conn, nil)

	_, err := client.ListAccessibleAccounts(context.Background(), connID)
	assert.True(t, errors.Is(err, domainerrors.ErrManagerAccountRequired))
}
