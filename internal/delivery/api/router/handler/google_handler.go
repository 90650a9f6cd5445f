package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"adpulse/config"
	"adpulse/internal/delivery/api/response"
	deliverycontext "adpulse/internal/delivery/context"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	accountsPagePath = "/admin/accounts"
	settingsPagePath = "/admin/settings"
)

// GoogleHandlerParams holds dependencies for GoogleHandler, injected by Fx.
type GoogleHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// GoogleHandler serves the Google account connection endpoints.
type GoogleHandler struct {
	connectionUC usecase.ConnectionUsecase
	publicURL    string
	logger       *slog.Logger
}

// NewGoogleHandler is the constructor for GoogleHandler
func NewGoogleHandler(params GoogleHandlerParams) *GoogleHandler {
	return &GoogleHandler{
		connectionUC: params.ConnectionUC,
		publicURL:    strings.TrimRight(params.Config.HTTP.PublicURL, "/"),
		logger:       params.Logger,
	}
}

// DisconnectRequest is the body of POST /api/google/disconnect.
type DisconnectRequest struct {
	ConnectionID string `json:"connectionId" validate:"required,uuid"`
}

// SetManagerAccountRequest is the body of PUT /api/google/accounts/:id/mcc.
// An empty id clears the manager account.
type SetManagerAccountRequest struct {
	MCCAccountID string `json:"mccAccountId" validate:"omitempty,max=12"`
}

// Connect redirects the operator to the Google consent screen.
func (h *GoogleHandler) Connect(c echo.Context) error {
	authURL, err := h.connectionUC.BeginConnect(c.Request().Context())
	if errors.Is(err, domainerrors.ErrOAuthNotConfigured) {
		return c.Redirect(http.StatusFound, h.pageURL(settingsPagePath, "error", "missing_credentials"))
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, authURL)
}

// Callback completes the consent flow and sends the operator back to the
// accounts page with the outcome in the query string.
func (h *GoogleHandler) Callback(c echo.Context) error {
	input := &usecase.CallbackInput{
		Code:  c.QueryParam("code"),
		State: c.QueryParam("state"),
		Error: c.QueryParam("error"),
	}
	if input.Error != "" {
		return c.Redirect(http.StatusFound, h.pageURL(accountsPagePath, "error", input.Error))
	}

	ctx := c.Request().Context()
	if _, err := h.connectionUC.CompleteConnect(ctx, input); err != nil {
		reason := callbackErrorReason(err)
		if reason == "oauth_failed" {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Google OAuth callback failed", slog.Any("error", err))
		}

		return c.Redirect(http.StatusFound, h.pageURL(accountsPagePath, "error", reason))
	}

	return c.Redirect(http.StatusFound, h.pageURL(accountsPagePath, "success", "connected"))
}

func callbackErrorReason(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrOAuthCodeMissing):
		return "no_code"
	case errors.Is(err, domainerrors.ErrOAuthStateInvalid):
		return "invalid_state"
	case errors.Is(err, domainerrors.ErrNoRefreshToken):
		return "no_refresh_token"
	default:
		return "oauth_failed"
	}
}

func (h *GoogleHandler) pageURL(path, key, value string) string {
	return h.publicURL + path + "?" + url.Values{key: []string{value}}.Encode()
}

// ListConnections lists connections with their client counts.
func (h *GoogleHandler) ListConnections(c echo.Context) error {
	connections, err := h.connectionUC.ListConnections(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, connections)
}

// Disconnect removes a connection no client uses.
func (h *GoogleHandler) Disconnect(c echo.Context) error {
	var req DisconnectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid disconnect request")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	if err := h.connectionUC.Disconnect(c.Request().Context(), uuid.MustParse(req.ConnectionID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}

// SetManagerAccount sets the manager account used as login-customer-id.
func (h *GoogleHandler) SetManagerAccount(c echo.Context) error {
	connectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid connection ID")
	}

	var req SetManagerAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid manager account request")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	if err := h.connectionUC.SetManagerAccount(c.Request().Context(), connectionID, req.MCCAccountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}

// ListCustomers lists the Ads accounts reachable through the manager account.
func (h *GoogleHandler) ListCustomers(c echo.Context) error {
	connectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid connection ID")
	}

	accounts, err := h.connectionUC.ListAccessibleAccounts(c.Request().Context(), connectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, accounts)
}
