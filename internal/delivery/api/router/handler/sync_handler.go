package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"adpulse/internal/delivery/api/response"
	deliverycontext "adpulse/internal/delivery/context"
	"adpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC  usecase.SyncUsecase
	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// SyncHandler serves the manual sync endpoints.
type SyncHandler struct {
	syncUC  usecase.SyncUsecase
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC:  params.SyncUC,
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// TriggerSyncRequest is the body of POST /api/sync/trigger.
type TriggerSyncRequest struct {
	ClientID string `json:"clientId" validate:"required,uuid"`
	Days     int    `json:"days" validate:"omitempty,min=1,max=365"`
}

// TriggerSync syncs one client and, on success, evaluates its budget alerts.
// The sync result is returned as is, including failures.
func (h *SyncHandler) TriggerSync(c echo.Context) error {
	var req TriggerSyncRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sync request")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	clientID := uuid.MustParse(req.ClientID)
	ctx := c.Request().Context()

	result := h.syncUC.SyncClientData(ctx, clientID, req.Days)
	if result.Success {
		if err := h.alertUC.CheckAndCreateAlerts(ctx, clientID); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Budget alert evaluation failed",
				slog.String("client_id", clientID.String()),
				slog.Any("error", err),
			)
		}
	}

	return c.JSON(http.StatusOK, result)
}

// SyncAll runs a sweep over every eligible client and returns the tally.
func (h *SyncHandler) SyncAll(c echo.Context) error {
	result, err := h.syncUC.RunSweep(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetSyncStatus lists recent sync logs, optionally for one connection.
func (h *SyncHandler) GetSyncStatus(c echo.Context) error {
	var connectionID *uuid.UUID
	if raw := c.QueryParam("connectionId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid connection ID")
		}
		connectionID = &id
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be between 1 and 100")
		}
		limit = parsed
	}

	logs, err := h.syncUC.ListSyncLogs(c.Request().Context(), connectionID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}
