// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"adpulse/config"
	"adpulse/internal/delivery/api/middleware"
	"adpulse/internal/delivery/api/router/handler"
	"adpulse/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	SyncHandler    *handler.SyncHandler
	GoogleHandler  *handler.GoogleHandler
	AlertHandler   *handler.AlertHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	syncHandler    *handler.SyncHandler
	googleHandler  *handler.GoogleHandler
	alertHandler   *handler.AlertHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		syncHandler:    params.SyncHandler,
		googleHandler:  params.GoogleHandler,
		alertHandler:   params.AlertHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	// Admin only
	admin := api.Group("")
	admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))

	syncGroup := admin.Group("/sync")
	{
		syncGroup.POST("/trigger", r.syncHandler.TriggerSync)
		syncGroup.POST("/all", r.syncHandler.SyncAll)
		syncGroup.GET("/status", r.syncHandler.GetSyncStatus)
	}

	googleGroup := admin.Group("/google")
	{
		googleGroup.GET("/connect", r.googleHandler.Connect)
		googleGroup.GET("/callback", r.googleHandler.Callback)
		googleGroup.POST("/disconnect", r.googleHandler.Disconnect)
		googleGroup.GET("/accounts", r.googleHandler.ListConnections)
		googleGroup.PUT("/accounts/:id/mcc", r.googleHandler.SetManagerAccount)
		googleGroup.GET("/accounts/:id/customers", r.googleHandler.ListCustomers)
	}

	// Admins see every client; client users are scoped by the handler
	alertsGroup := api.Group("/alerts")
	alertsGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleClient))
	{
		alertsGroup.GET("", r.alertHandler.ListAlerts)
		alertsGroup.PATCH("", r.alertHandler.MarkAlert)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	path := r.config.Metrics.Path
	if path == "" {
		path = defaultMetricsPath
	}
	e.GET(path, echo.WrapHandler(promhttp.Handler()))
}
