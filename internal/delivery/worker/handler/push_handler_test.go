package handler

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "adpulse/internal/delivery/context"
	domainerrors "adpulse/internal/domain/errors"
	mockUsecase "adpulse/internal/mocks/usecase"
	"adpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/api/idtoken"
)

type pushHandlerFixtures struct {
	handler *PushHandler
	syncUC  *mockUsecase.MockSyncUsecase
	alertUC *mockUsecase.MockAlertUsecase
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	syncUC := mockUsecase.NewMockSyncUsecase(t)
	alertUC := mockUsecase.NewMockAlertUsecase(t)

	return pushHandlerFixtures{
		handler: &PushHandler{
			logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
			syncUC:  syncUC,
			alertUC: alertUC,
		},
		syncUC:  syncUC,
		alertUC: alertUC,
	}
}

func pushBody(payload string, attributes string) string {
	data := base64.StdEncoding.EncodeToString([]byte(payload))

	return `{"message":{"data":"` + data + `","messageId":"m-1"` + attributes + `},"subscription":"projects/p/subscriptions/sync"}`
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_FleetSweep(t *testing.T) {
	fx := createTestPushHandler(t)
	fx.syncUC.EXPECT().
		RunSweep(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "attr-req"
		})).
		Return(&usecase.SweepResult{Total: 3, Success: 2, Failed: 1}, nil)

	rec := servePush(fx.handler, pushBody(`{"request_id":"payload-req"}`, `,"attributes":{"request_id":"attr-req"}`), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_SweepOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "already running is acknowledged", err: domainerrors.ErrSweepInProgress, wantCode: http.StatusOK},
		{name: "lock backend down is retried", err: errors.New("redis down"), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushHandler(t)
			fx.syncUC.EXPECT().RunSweep(mock.Anything).Return(nil, tt.err)

			rec := servePush(fx.handler, pushBody(`{}`, ""), nil)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_SingleClient(t *testing.T) {
	fx := createTestPushHandler(t)
	clientID := uuid.New()

	fx.syncUC.EXPECT().SyncClientData(mock.Anything, clientID, 7).Return(&usecase.SyncResult{Success: true, RecordsCount: 4})
	fx.alertUC.EXPECT().CheckAndCreateAlerts(mock.Anything, clientID).Return(errors.New("db down"))

	rec := servePush(fx.handler, pushBody(`{"client_id":"`+clientID.String()+`","days":7}`, ""), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_FailedClientSyncSkipsAlerts(t *testing.T) {
	fx := createTestPushHandler(t)
	clientID := uuid.New()

	fx.syncUC.EXPECT().SyncClientData(mock.Anything, clientID, 0).Return(&usecase.SyncResult{Success: false, Error: "boom"})

	rec := servePush(fx.handler, pushBody(`{"client_id":"`+clientID.String()+`"}`, ""), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedPayloadIsAcknowledged(t *testing.T) {
	fx := createTestPushHandler(t)

	rec := servePush(fx.handler, pushBody(`not json`, ""), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = servePush(fx.handler, `{"message":{"data":"%%%"}}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	fx := createTestPushHandler(t)
	fx.handler.verifyPushAuth = true

	var gotAudience string
	fx.handler.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	rec := servePush(fx.handler, pushBody(`{}`, ""), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(fx.handler, pushBody(`{}`, ""), http.Header{"Authorization": []string{"Bearer forged"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "http://example.com/push", gotAudience)

	fx.syncUC.EXPECT().RunSweep(mock.Anything).Return(&usecase.SweepResult{}, nil).Once()
	rec = servePush(fx.handler, pushBody(`{}`, ""), http.Header{"Authorization": []string{"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}
