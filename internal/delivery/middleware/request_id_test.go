package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "adpulse/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (string, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromContext string
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := mw.Process(func(c echo.Context) error {
		fromContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return fromContext, rec.Header().Get(deliverycontext.HeaderXRequestID)
}

func TestRequestIDMiddleware_ReusesCallerID(t *testing.T) {
	fromContext, echoed := runRequestID(t, "sched-2024.03.20_run-1")

	assert.Equal(t, "sched-2024.03.20_run-1", fromContext)
	assert.Equal(t, fromContext, echoed)
}

func TestRequestIDMiddleware_ReplacesMalformedID(t *testing.T) {
	for _, header := range []string{"", "has space", strings.Repeat("a", 65), "line\nbreak"} {
		fromContext, echoed := runRequestID(t, header)

		_, err := uuid.Parse(fromContext)
		assert.NoError(t, err, "header %q", header)
		assert.Equal(t, fromContext, echoed)
	}
}
