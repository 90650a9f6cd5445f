package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adpulse/internal/delivery/api/middleware"
	"adpulse/internal/delivery/api/validator"
	"adpulse/internal/domain/entity"
	"adpulse/internal/domain/service"
	mockSvc "adpulse/internal/mocks/service"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testToken = "session-token"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho mirrors the API server: validator, error handler and an auth
// middleware whose token always resolves to claims.
func newTestEcho(t *testing.T, claims *service.Claims) (*echo.Echo, echo.MiddlewareFunc) {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(testToken).Return(claims, nil).Maybe()

	return e, middleware.NewAuthMiddleware(tokenSvc).Authenticate
}

func adminClaims() *service.Claims {
	return &service.Claims{UserID: uuid.New(), Roles: []string{entity.RoleAdmin.String()}}
}

func clientClaims(clientID *uuid.UUID) *service.Claims {
	return &service.Claims{UserID: uuid.New(), Roles: []string{entity.RoleClient.String()}, ClientID: clientID}
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

// errorCode extracts error.code from the error envelope.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeJSON(t, rec)
	info, ok := body["error"].(map[string]any)
	require.True(t, ok, "body %s", rec.Body.String())

	return info["code"].(string)
}
