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

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// ExistsAlertSince reports whether the client already has an alert of the type since the given time.
func (repo *alertRepository) ExistsAlertSince(ctx context.Context, clientID uuid.UUID, alertType entity.AlertType, since time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("client_id = ? AND type = ? AND created_at >= ?", clientID, string(alertType), since).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to look up existing alert")
	}

	return count > 0, nil
}

// FindAlertByID retrieves an alert by its unique ID.
func (repo *alertRepository) FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var row model.AlertRow

	if err := repo.joined(ctx).
		Where("a.id = ?", id).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toAlertDomain(&row), nil
}

// CreateAlert persists an alert.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	alertM := &model.AlertModel{
		ClientID:  alert.ClientID,
		Type:      string(alert.Type),
		Message:   alert.Message,
		Severity:  string(alert.Severity),
		IsRead:    alert.IsRead,
		CreatedAt: alert.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// ListAlerts lists alerts newest first.
func (repo *alertRepository) ListAlerts(ctx context.Context, filter entity.AlertFilter) ([]*entity.Alert, error) {
	var rows []*model.AlertRow

	query := repo.joined(ctx)
	if filter.ClientID != nil {
		query = query.Where("a.client_id = ?", *filter.ClientID)
	}
	if filter.UnreadOnly {
		query = query.Where("a.is_read = ?", false)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.
		Order("a.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	alerts := make([]*entity.Alert, 0, len(rows))
	for _, row := range rows {
		alerts = append(alerts, toAlertDomain(row))
	}

	return alerts, nil
}

// UpdateAlertRead sets the read flag and returns the alert.
func (repo *alertRepository) UpdateAlertRead(ctx context.Context, id uuid.UUID, isRead bool) (*entity.Alert, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ?", id).
		Update("is_read", isRead)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update alert")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrAlertNotFound
	}

	return repo.FindAlertByID(ctx, id)
}

func (repo *alertRepository) joined(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("alerts AS a").
		Select("a.*, c.company_name").
		Joins("LEFT JOIN clients c ON c.id = a.client_id")
}

// --- Mapper Functions ---

func toAlertDomain(data *model.AlertRow) *entity.Alert {
	return &entity.Alert{
		ID:          data.ID,
		ClientID:    data.ClientID,
		Type:        entity.AlertType(data.Type),
		Message:     data.Message,
		Severity:    entity.AlertSeverity(data.Severity),
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
		CompanyName: data.CompanyName,
	}
}
