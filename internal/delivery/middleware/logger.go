package middleware

import (
	"log/slog"

	"adpulse/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access log line per request.
type LoggerMiddleware struct {
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates the access logger. Debug mode adds headers and
// bodies; probes are never logged.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	debug := config.Env.Debug

	return &LoggerMiddleware{
		handler: slogecho.NewWithConfig(logger, slogecho.Config{
			DefaultLevel:      slog.LevelInfo,
			ClientErrorLevel:  slog.LevelWarn,
			ServerErrorLevel:  slog.LevelError,
			WithUserAgent:     true,
			WithRequestID:     true,
			WithRequestHeader: debug,
			WithRequestBody:   debug,
			WithResponseBody:  debug,
			Filters: []slogecho.Filter{
				slogecho.IgnorePath("/health", "/metrics"),
			},
		}),
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}
