package handler

import (
	"log/slog"
	"net/http"

	"adpulse/internal/delivery/api/middleware"
	"adpulse/internal/delivery/api/response"
	"adpulse/internal/domain/entity"
	"adpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves budget alerts to admins and client users.
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// MarkAlertRequest is the body of PATCH /api/alerts.
type MarkAlertRequest struct {
	AlertID string `json:"alertId" validate:"required,uuid"`
	IsRead  *bool  `json:"isRead" validate:"required"`
}

// ListAlerts lists the newest alerts. Client users only see their own.
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	filter := entity.AlertFilter{UnreadOnly: c.QueryParam("unread") == "true"}

	scope, ok := h.clientScope(c)
	if !ok {
		return response.Forbidden(c, "NO_CLIENT", "No client associated")
	}

	switch {
	case scope != nil:
		filter.ClientID = scope
	case c.QueryParam("clientId") != "":
		clientID, err := uuid.Parse(c.QueryParam("clientId"))
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid client ID")
		}
		filter.ClientID = &clientID
	}

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}

// MarkAlert sets the read flag of an alert.
func (h *AlertHandler) MarkAlert(c echo.Context) error {
	var req MarkAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert update")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	scope, ok := h.clientScope(c)
	if !ok {
		return response.Forbidden(c, "NO_CLIENT", "No client associated")
	}

	alert, err := h.alertUC.MarkAlertRead(c.Request().Context(), uuid.MustParse(req.AlertID), *req.IsRead, scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// clientScope returns nil for admins and the bound client for client users.
// ok is false for a non-admin session without a client.
func (h *AlertHandler) clientScope(c echo.Context) (*uuid.UUID, bool) {
	if middleware.IsAdmin(c) {
		return nil, true
	}

	clientID, ok := middleware.GetClientID(c)
	if !ok {
		return nil, false
	}

	return &clientID, true
}
