package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"adpulse/config"
	deliverycontext "adpulse/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func sqlFn(query string, rows int64) func() (string, int64) {
	return func() (string, int64) { return query, rows }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	base, buf := newBufferedLogger()
	l := newGormSlogLogger(base, &config.Config{})

	// Quiet at warn level for a fast successful query and for not-found.
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), nil)
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT * FROM clients", 0), gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn("INSERT INTO alerts", 0), errors.New("duplicate key"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "duplicate key")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("UPSERT daily_metrics", 30), nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_UsesContextLogger(t *testing.T) {
	base, baseBuf := newBufferedLogger()
	reqLogger, reqBuf := newBufferedLogger()
	l := newGormSlogLogger(base, &config.Config{})
	l = l.LogMode(logger.Info)

	ctx := deliverycontext.WithLogger(context.Background(), reqLogger.With(slog.String("request_id", "sweep-9")))
	l.Trace(ctx, time.Now(), sqlFn("SELECT 1", 1), nil)

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), `"request_id":"sweep-9"`)
}

func TestLogPoolWait(t *testing.T) {
	base, buf := newBufferedLogger()

	logPoolWait(context.Background(), base, sqlStats(3, 10*time.Millisecond), sqlStats(3, 10*time.Millisecond))
	assert.Empty(t, buf.String())

	logPoolWait(context.Background(), base, sqlStats(3, 0), sqlStats(5, 200*time.Millisecond))
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waits":2`)
}

func sqlStats(waits int64, waited time.Duration) sql.DBStats {
	return sql.DBStats{WaitCount: waits, WaitDuration: waited}
}
