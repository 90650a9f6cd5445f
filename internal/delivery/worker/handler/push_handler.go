package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"adpulse/config"
	deliverycontext "adpulse/internal/delivery/context"
	"adpulse/internal/domain/constants"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// SyncRequest is the payload of a sync trigger message. Without ClientID the
// whole fleet is swept.
type SyncRequest struct {
	RequestID string `json:"request_id,omitempty"`
	ClientID  string `json:"client_id,omitempty"`
	Days      int    `json:"days,omitempty"`
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler runs syncs requested through Pub/Sub push subscriptions, for
// example by Cloud Scheduler publishing on a timer.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	syncUC         usecase.SyncUsecase
	alertUC        usecase.AlertUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	SyncUC  usecase.SyncUsecase
	AlertUC usecase.AlertUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push requests are only signed by Google outside local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop &&
		params.Config.Env.Env != constants.EnvLocal

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		syncUC:         params.SyncUC,
		alertUC:        params.AlertUC,
	}
}

// HandlePush acknowledges with 200 unless a retry could help, in which case
// it answers 503 so Pub/Sub redelivers.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	request, err := decodeSyncRequest(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode sync request",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		// Malformed payloads never succeed; ack them
		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, request)
	ctx = deliverycontext.WithTrace(ctx, h.logger, requestID)
	reqLogger := deliverycontext.GetLogger(ctx)

	if request.ClientID != "" {
		return h.syncClient(ctx, c, reqLogger, request)
	}

	result, err := h.syncUC.RunSweep(ctx)
	switch {
	case errors.Is(err, domainerrors.ErrSweepInProgress):
		reqLogger.Info("[Worker] Sweep already running, skipping")

		return c.NoContent(http.StatusOK)
	case err != nil:
		reqLogger.Error("[Worker] Sweep could not start", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Sweep finished",
		slog.Int("total", result.Total),
		slog.Int("success", result.Success),
		slog.Int("failed", result.Failed),
	)

	return c.NoContent(http.StatusOK)
}

// syncClient runs a single-client sync. Its failure is already recorded in
// the sync log, so the message is acknowledged either way.
func (h *PushHandler) syncClient(ctx context.Context, c echo.Context, logger *slog.Logger, request *SyncRequest) error {
	clientID, err := uuid.Parse(request.ClientID)
	if err != nil {
		logger.Error("[Worker] Invalid client id in sync request", slog.String("client_id", request.ClientID))

		return c.NoContent(http.StatusOK)
	}

	result := h.syncUC.SyncClientData(ctx, clientID, request.Days)
	if !result.Success {
		logger.Warn("[Worker] Client sync failed",
			slog.String("client_id", request.ClientID),
			slog.String("error", result.Error),
		)

		return c.NoContent(http.StatusOK)
	}

	if err := h.alertUC.CheckAndCreateAlerts(ctx, clientID); err != nil {
		logger.Warn("[Worker] Budget alert evaluation failed",
			slog.String("client_id", request.ClientID),
			slog.Any("error", err),
		)
	}

	return c.NoContent(http.StatusOK)
}

func decodeSyncRequest(data string) (*SyncRequest, error) {
	request := &SyncRequest{}
	if data == "" {
		return request, nil
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}
	if err := json.Unmarshal(raw, request); err != nil {
		return nil, errors.Wrap(err, "failed to parse sync request")
	}

	return request, nil
}

// extractRequestID prefers message attributes, then the payload, then the
// incoming request, and finally generates one.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, request *SyncRequest) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if request.RequestID != "" {
		return request.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken checks the OIDC token Pub/Sub attaches to push requests.
// The audience is the push endpoint URL.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
