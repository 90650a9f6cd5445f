package postgres

import (
	"context"
	"time"

	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/repository"
	"adpulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// syncLogRepository implements the repository.SyncLogRepository interface.
type syncLogRepository struct {
	db *gorm.DB
}

// NewSyncLogRepository is the constructor for syncLogRepository.
func NewSyncLogRepository(db *gorm.DB) repository.SyncLogRepository {
	return &syncLogRepository{
		db: db,
	}
}

// CreateSyncLog persists a new sync log.
func (repo *syncLogRepository) CreateSyncLog(ctx context.Context, log *entity.SyncLog) error {
	logM := &model.SyncLogModel{
		ConnectionID: log.ConnectionID,
		SyncType:     string(log.Type),
		Status:       string(log.Status),
		RecordsCount: log.RecordsCount,
		ErrorMessage: nullString(log.Error),
		StartedAt:    log.StartedAt,
		CompletedAt:  log.CompletedAt,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sync log")
	}

	log.ID = logM.ID

	return nil
}

// CompleteSyncLog records the terminal status of a sync.
func (repo *syncLogRepository) CompleteSyncLog(ctx context.Context, id uuid.UUID, status entity.SyncLogStatus, recordsCount int, errMsg string, completedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SyncLogModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        string(status),
			"records_count": recordsCount,
			"error_message": nullString(errMsg),
			"completed_at":  completedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to complete sync log")
	}

	if result.RowsAffected == 0 {
		return errors.Errorf("sync log %s not found", id)
	}

	return nil
}

// ListRecentSyncLogs lists logs newest first with the connection email attached.
func (repo *syncLogRepository) ListRecentSyncLogs(ctx context.Context, connectionID *uuid.UUID, limit int) ([]*entity.SyncLog, error) {
	var rows []*model.SyncLogRow

	query := repo.db.WithContext(ctx).
		Table("sync_logs AS sl").
		Select("sl.*, gc.google_email").
		Joins("LEFT JOIN google_connections gc ON gc.id = sl.connection_id")
	if connectionID != nil {
		query = query.Where("sl.connection_id = ?", *connectionID)
	}

	if err := query.
		Order("sl.started_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sync logs")
	}

	logs := make([]*entity.SyncLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, &entity.SyncLog{
			ID:           row.ID,
			ConnectionID: row.ConnectionID,
			Type:         entity.SyncType(row.SyncType),
			Status:       entity.SyncLogStatus(row.Status),
			RecordsCount: row.RecordsCount,
			Error:        derefString(row.ErrorMessage),
			StartedAt:    row.StartedAt,
			CompletedAt:  row.CompletedAt,
			GoogleEmail:  row.GoogleEmail,
		})
	}

	return logs, nil
}
