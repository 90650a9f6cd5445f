// Package googleads is a narrow client for the Google Ads reporting (search) API.
package googleads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"adpulse/config"
	"adpulse/internal/domain/constants"
	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/repository"
	"adpulse/internal/domain/service"
	"adpulse/internal/infra/metrics"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	opCampaigns          = "campaigns"
	opDailyMetrics       = "daily metrics"
	opCampaignMetrics    = "campaign metrics"
	opAccessibleAccounts = "accessible accounts"

	breakerName  = "google-ads"
	maxErrorBody = 64 << 10
)

// apiError is a non-2xx answer from the reporting API. Body is kept verbatim.
type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("Google Ads API returned status %d: %s", e.Status, e.Body)
}

// Client implements service.AdsReportingClient. One instance is shared by the
// whole process so that the limiter and breaker see every request.
type Client struct {
	cfg            *config.GoogleAdsConfig
	refreshLockTTL time.Duration

	httpClient  *http.Client
	connections repository.ConnectionRepository
	vault       service.TokenVault
	oauth       service.OAuthService
	locker      service.Locker
	metrics     *metrics.Metrics
	logger      *slog.Logger

	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
	now     func() time.Time
}

// ClientParams holds dependencies for the reporting client, injected by Fx
type ClientParams struct {
	fx.In

	Config      *config.Config
	Connections repository.ConnectionRepository
	Vault       service.TokenVault
	OAuth       service.OAuthService
	Locker      service.Locker
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// NewClient creates the reporting client.
func NewClient(params ClientParams) service.AdsReportingClient {
	return newClient(params)
}

func newClient(params ClientParams) *Client {
	cfg := params.Config.GoogleAds

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		cfg:            cfg,
		refreshLockTTL: params.Config.Sync.RefreshLockTTL,
		httpClient:     &http.Client{Timeout: cfg.RequestTimeout},
		connections:    params.Connections,
		vault:          params.Vault,
		oauth:          params.OAuth,
		locker:         params.Locker,
		metrics:        params.Metrics,
		logger:         params.Logger,
		limiter:        rate.NewLimiter(limit, burst),
		now:            time.Now,
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.Breaker.MaxHalfOpen,
		Timeout:     cfg.Breaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Breaker.FailureThreshold
		},
		// Client errors say nothing about the health of the API.
		IsSuccessful: func(err error) bool {
			var apiErr *apiError
			if errors.As(err, &apiErr) {
				return apiErr.Status < http.StatusInternalServerError && apiErr.Status != http.StatusTooManyRequests
			}

			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("Google Ads circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			c.metrics.SetBreakerOpen(name, to == gobreaker.StateOpen)
		},
	})

	return c
}

// customerHandle is an authenticated query target.
type customerHandle struct {
	customerID      string
	loginCustomerID string
	accessToken     string
}

func normalizeCustomerID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

// customer loads the connection and makes sure it carries a usable access token.
func (c *Client) customer(ctx context.Context, connectionID uuid.UUID, customerID string) (*customerHandle, error) {
	conn, err := c.connections.FindConnectionByID(ctx, connectionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load connection")
	}

	if conn.NeedsTokenRefresh(c.now()) {
		conn, err = c.refreshAccessToken(ctx, connectionID)
		if err != nil {
			return nil, err
		}
	}

	return &customerHandle{
		customerID:      normalizeCustomerID(customerID),
		loginCustomerID: normalizeCustomerID(conn.MCCAccountID),
		accessToken:     conn.AccessToken,
	}, nil
}

// refreshAccessToken runs under a per-connection lock so that concurrent
// syncs sharing a connection refresh once.
func (c *Client) refreshAccessToken(ctx context.Context, connectionID uuid.UUID) (*entity.GoogleConnection, error) {
	held, err := c.locker.Obtain(ctx, constants.LockKeyConnectionRefresh+connectionID.String(), c.refreshLockTTL, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock connection for token refresh")
	}
	defer func() {
		if releaseErr := held.Release(context.WithoutCancel(ctx)); releaseErr != nil {
			c.logger.Warn("Failed to release refresh lock", slog.Any("error", releaseErr))
		}
	}()

	// Another holder may have refreshed while we waited.
	conn, err := c.connections.FindConnectionByID(ctx, connectionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload connection")
	}
	now := c.now()
	if !conn.NeedsTokenRefresh(now) {
		return conn, nil
	}

	refreshToken, err := c.vault.Decrypt(conn.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt refresh token")
	}

	tokens, err := c.oauth.RefreshAccessToken(ctx, refreshToken)
	c.metrics.ObserveTokenRefresh(err)
	if err != nil {
		return nil, err
	}

	expiry := now.Add(time.Duration(tokens.ExpiresIn) * time.Second)
	if err := c.connections.UpdateAccessToken(ctx, connectionID, tokens.AccessToken, expiry); err != nil {
		return nil, errors.Wrap(err, "failed to persist refreshed access token")
	}

	c.logger.Debug("Refreshed Google access token",
		slog.String("connection_id", connectionID.String()),
		slog.Time("expires_at", expiry),
	)

	conn.AccessToken = tokens.AccessToken
	conn.TokenExpiry = &expiry

	return conn, nil
}

// search runs a GAQL query and follows page tokens until exhausted.
func (c *Client) search(ctx context.Context, op string, handle *customerHandle, query string) ([]searchRow, error) {
	var (
		rows      []searchRow
		pageToken string
	)

	for {
		body, err := c.searchPage(ctx, op, handle, query, pageToken)
		if err != nil {
			return nil, err
		}

		page, err := decodeSearchResponse(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode search response")
		}

		rows = append(rows, page.Results...)
		if page.NextPageToken == "" {
			return rows, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *Client) searchPage(ctx context.Context, op string, handle *customerHandle, query, pageToken string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter")
	}

	payload, err := json.Marshal(searchRequest{Query: query, PageToken: pageToken})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	started := c.now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		reqCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
		defer cancel()

		return c.doSearch(reqCtx, handle, payload)
	})
	c.metrics.ObserveAdsRequest(op, err, time.Since(started))
	if err != nil {
		return nil, err
	}

	return body, nil
}

func (c *Client) doSearch(ctx context.Context, handle *customerHandle, payload []byte) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/%s/customers/%s/googleAds:search",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.APIVersion, handle.customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create search request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+handle.accessToken)
	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if handle.loginCustomerID != "" {
		req.Header.Set("login-customer-id", handle.loginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "search request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, &apiError{Status: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read search response")
	}

	return body, nil
}

func queryError(op, customerID string, err error) error {
	return &domainerrors.ReportingQueryError{Op: op, CustomerID: normalizeCustomerID(customerID), Err: err}
}

// ListCampaigns returns every non-removed campaign ordered by name.
func (c *Client) ListCampaigns(ctx context.Context, connectionID uuid.UUID, customerID string) ([]service.AdsCampaign, error) {
	handle, err := c.customer(ctx, connectionID, customerID)
	if err != nil {
		return nil, queryError(opCampaigns, customerID, err)
	}

	rows, err := c.search(ctx, opCampaigns, handle, campaignsQuery)
	if err != nil {
		return nil, queryError(opCampaigns, customerID, err)
	}

	campaigns := make([]service.AdsCampaign, 0, len(rows))
	for _, row := range rows {
		campaigns = append(campaigns, toCampaign(row))
	}

	return campaigns, nil
}

// GetDailyMetrics returns account totals per day in the range.
func (c *Client) GetDailyMetrics(ctx context.Context, connectionID uuid.UUID, customerID, startDate, endDate string) ([]service.AdsDailyMetrics, error) {
	handle, err := c.customer(ctx, connectionID, customerID)
	if err != nil {
		return nil, queryError(opDailyMetrics, customerID, err)
	}

	rows, err := c.search(ctx, opDailyMetrics, handle, dailyMetricsQuery(startDate, endDate))
	if err != nil {
		return nil, queryError(opDailyMetrics, customerID, err)
	}

	out := make([]service.AdsDailyMetrics, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDailyMetrics(row))
	}

	return out, nil
}

// GetCampaignMetrics returns one row per (campaign, day) in the range.
func (c *Client) GetCampaignMetrics(ctx context.Context, connectionID uuid.UUID, customerID, startDate, endDate string) ([]service.AdsCampaignMetrics, error) {
	handle, err := c.customer(ctx, connectionID, customerID)
	if err != nil {
		return nil, queryError(opCampaignMetrics, customerID, err)
	}

	rows, err := c.search(ctx, opCampaignMetrics, handle, campaignMetricsQuery(startDate, endDate))
	if err != nil {
		return nil, queryError(opCampaignMetrics, customerID, err)
	}

	out := make([]service.AdsCampaignMetrics, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCampaignMetrics(row))
	}

	return out, nil
}

// ListAccessibleAccounts lists enabled accounts under the manager account of the connection.
func (c *Client) ListAccessibleAccounts(ctx context.Context, connectionID uuid.UUID) ([]service.AdsAccount, error) {
	conn, err := c.connections.FindConnectionByID(ctx, connectionID)
	if err != nil {
		return nil, queryError(opAccessibleAccounts, "", errors.Wrap(err, "failed to load connection"))
	}
	if conn.MCCAccountID == "" {
		return nil, queryError(opAccessibleAccounts, "", errors.WithStack(domainerrors.ErrManagerAccountRequired))
	}

	handle, err := c.customer(ctx, connectionID, conn.MCCAccountID)
	if err != nil {
		return nil, queryError(opAccessibleAccounts, conn.MCCAccountID, err)
	}

	rows, err := c.search(ctx, opAccessibleAccounts, handle, accessibleAccountsQuery)
	if err != nil {
		return nil, queryError(opAccessibleAccounts, conn.MCCAccountID, err)
	}

	accounts := make([]service.AdsAccount, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, toAccount(row))
	}

	return accounts, nil
}
