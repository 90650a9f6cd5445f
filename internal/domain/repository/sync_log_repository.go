package repository

import (
	"context"
	"time"

	"adpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncLogRepository defines persistence for sync audit records.
type SyncLogRepository interface {
	// CreateSyncLog inserts a log and fills its ID.
	CreateSyncLog(ctx context.Context, log *entity.SyncLog) error

	// CompleteSyncLog moves a RUNNING log to its terminal status.
	CompleteSyncLog(ctx context.Context, id uuid.UUID, status entity.SyncLogStatus, recordsCount int, errMsg string, completedAt time.Time) error

	// ListRecentSyncLogs lists logs newest first, optionally for one connection.
	ListRecentSyncLogs(ctx context.Context, connectionID *uuid.UUID, limit int) ([]*entity.SyncLog, error)
}
