package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"adpulse/config"
	"adpulse/internal/delivery/api/middleware"
	"adpulse/internal/delivery/api/router/handler"
	"adpulse/internal/domain/entity"
	"adpulse/internal/domain/service"
	mockSvc "adpulse/internal/mocks/service"
	mockUsecase "adpulse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouterEcho(t *testing.T, cfg *config.Config) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	clientID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("admin-token").
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{entity.RoleAdmin.String()}}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken("client-token").
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{entity.RoleClient.String()}, ClientID: &clientID}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken("expired-token").Return(nil, errors.New("token is expired")).Maybe()

	alertUC := mockUsecase.NewMockAlertUsecase(t)
	alertUC.EXPECT().ListAlerts(mock.Anything, mock.Anything).Return([]*entity.Alert{}, nil).Maybe()
	connectionUC := mockUsecase.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().ListConnections(mock.Anything).Return([]*entity.ConnectionSummary{}, nil).Maybe()

	r := NewRouter(RouterParams{
		SyncHandler:    handler.NewSyncHandler(handler.SyncHandlerParams{SyncUC: mockUsecase.NewMockSyncUsecase(t), AlertUC: alertUC, Logger: logger}),
		GoogleHandler:  handler.NewGoogleHandler(handler.GoogleHandlerParams{ConnectionUC: connectionUC, Config: cfg, Logger: logger}),
		AlertHandler:   handler.NewAlertHandler(handler.AlertHandlerParams{AlertUC: alertUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
		Config:         cfg,
	})

	e := echo.New()
	r.RegisterRoutes(e)
	r.RegisterMetricsRoute(e)

	return e
}

func serve(e *echo.Echo, method, target, token string) int {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func TestRouter_Access(t *testing.T) {
	e := newTestRouterEcho(t, &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}})

	tests := []struct {
		name   string
		method string
		target string
		token  string
		want   int
	}{
		{name: "health is public", method: http.MethodGet, target: "/health", want: http.StatusOK},
		{name: "metrics is public", method: http.MethodGet, target: "/metrics", want: http.StatusOK},
		{name: "missing token", method: http.MethodGet, target: "/api/alerts", want: http.StatusUnauthorized},
		{name: "expired token", method: http.MethodGet, target: "/api/alerts", token: "expired-token", want: http.StatusUnauthorized},
		{name: "client cannot trigger sync", method: http.MethodPost, target: "/api/sync/trigger", token: "client-token", want: http.StatusForbidden},
		{name: "client cannot list connections", method: http.MethodGet, target: "/api/google/accounts", token: "client-token", want: http.StatusForbidden},
		{name: "admin lists connections", method: http.MethodGet, target: "/api/google/accounts", token: "admin-token", want: http.StatusOK},
		{name: "client lists own alerts", method: http.MethodGet, target: "/api/alerts", token: "client-token", want: http.StatusOK},
		{name: "admin lists alerts", method: http.MethodGet, target: "/api/alerts", token: "admin-token", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(e, tt.method, tt.target, tt.token))
		})
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	e := newTestRouterEcho(t, &config.Config{Metrics: &config.MetricsConfig{Enabled: false}})

	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/metrics", ""))
}
