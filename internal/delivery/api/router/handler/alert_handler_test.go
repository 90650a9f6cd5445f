package handler

import (
	"net/http"
	"testing"

	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/service"
	mockUsecase "adpulse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertHandlerFixtures struct {
	echo    *echo.Echo
	alertUC *mockUsecase.MockAlertUsecase
}

func createTestAlertHandler(t *testing.T, claims *service.Claims) alertHandlerFixtures {
	alertUC := mockUsecase.NewMockAlertUsecase(t)
	h := NewAlertHandler(AlertHandlerParams{AlertUC: alertUC, Logger: newDiscardLogger()})

	e, auth := newTestEcho(t, claims)
	e.GET("/api/alerts", h.ListAlerts, auth)
	e.PATCH("/api/alerts", h.MarkAlert, auth)

	return alertHandlerFixtures{echo: e, alertUC: alertUC}
}

func TestAlertHandler_ListAlerts_ClientScoped(t *testing.T) {
	clientID := uuid.New()
	fx := createTestAlertHandler(t, clientClaims(&clientID))

	// A client user cannot widen the listing with clientId.
	fx.alertUC.EXPECT().
		ListAlerts(mock.Anything, entity.AlertFilter{ClientID: &clientID, UnreadOnly: true}).
		Return([]*entity.Alert{{ID: uuid.New(), ClientID: clientID, Type: entity.AlertTypeBudget80, Message: "Budget at 80%: MYR4000 / MYR5000"}}, nil)

	rec := doRequest(fx.echo, http.MethodGet, "/api/alerts?unread=true&clientId="+uuid.NewString(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeJSON(t, rec)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Budget at 80%: MYR4000 / MYR5000", data[0].(map[string]any)["message"])
}

func TestAlertHandler_ListAlerts_NoClient(t *testing.T) {
	fx := createTestAlertHandler(t, clientClaims(nil))

	rec := doRequest(fx.echo, http.MethodGet, "/api/alerts", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NO_CLIENT", errorCode(t, rec))
}

func TestAlertHandler_ListAlerts_Admin(t *testing.T) {
	fx := createTestAlertHandler(t, adminClaims())
	clientID := uuid.New()

	fx.alertUC.EXPECT().ListAlerts(mock.Anything, entity.AlertFilter{}).Return([]*entity.Alert{}, nil).Once()
	rec := doRequest(fx.echo, http.MethodGet, "/api/alerts", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	fx.alertUC.EXPECT().ListAlerts(mock.Anything, entity.AlertFilter{ClientID: &clientID}).Return([]*entity.Alert{}, nil).Once()
	rec = doRequest(fx.echo, http.MethodGet, "/api/alerts?clientId="+clientID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(fx.echo, http.MethodGet, "/api/alerts?clientId=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAlertHandler_MarkAlert(t *testing.T) {
	clientID := uuid.New()
	alertID := uuid.New()
	fx := createTestAlertHandler(t, clientClaims(&clientID))

	fx.alertUC.EXPECT().MarkAlertRead(mock.Anything, alertID, true, &clientID).
		Return(&entity.Alert{ID: alertID, ClientID: clientID, IsRead: true}, nil).Once()
	rec := doRequest(fx.echo, http.MethodPatch, "/api/alerts", `{"alertId":"`+alertID.String()+`","isRead":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeJSON(t, rec)["data"].(map[string]any)["isRead"])

	fx.alertUC.EXPECT().MarkAlertRead(mock.Anything, alertID, false, &clientID).Return(nil, domainerrors.ErrAlertNotFound).Once()
	rec = doRequest(fx.echo, http.MethodPatch, "/api/alerts", `{"alertId":"`+alertID.String()+`","isRead":false}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// isRead is required; false must not be confused with missing.
	rec = doRequest(fx.echo, http.MethodPatch, "/api/alerts", `{"alertId":"`+alertID.String()+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestAlertHandler_MarkAlert_AdminUnscoped(t *testing.T) {
	alertID := uuid.New()
	fx := createTestAlertHandler(t, adminClaims())

	fx.alertUC.EXPECT().MarkAlertRead(mock.Anything, alertID, true, (*uuid.UUID)(nil)).
		Return(&entity.Alert{ID: alertID, IsRead: true}, nil)

	rec := doRequest(fx.echo, http.MethodPatch, "/api/alerts", `{"alertId":"`+alertID.String()+`","isRead":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}
