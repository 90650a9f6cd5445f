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
	"gorm.io/gorm/clause"
)

// connectionRepository implements the repository.ConnectionRepository interface.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{
		db: db,
	}
}

// FindConnectionByID retrieves a connection by its unique ID.
func (repo *connectionRepository) FindConnectionByID(ctx context.Context, id uuid.UUID) (*entity.GoogleConnection, error) {
	var connM model.GoogleConnectionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&connM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find connection by ID")
	}

	return toConnectionDomain(&connM), nil
}

// UpsertConnectionByEmail inserts the connection, or replaces the tokens of the
// one already stored for the same Google account and reactivates it.
func (repo *connectionRepository) UpsertConnectionByEmail(ctx context.Context, conn *entity.GoogleConnection) (*entity.GoogleConnection, error) {
	connM := fromConnectionDomain(conn)
	connM.IsActive = true

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "google_email"}},
			DoUpdates: clause.AssignmentColumns([]string{"refresh_token", "access_token", "token_expiry", "is_active", "updated_at"}),
		}).
		Create(connM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert google connection")
	}

	var stored model.GoogleConnectionModel
	if err := repo.db.WithContext(ctx).
		Where("google_email = ?", conn.GoogleEmail).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload google connection")
	}

	return toConnectionDomain(&stored), nil
}

// UpdateAccessToken persists a refreshed access token.
func (repo *connectionRepository) UpdateAccessToken(ctx context.Context, id uuid.UUID, accessToken string, expiry time.Time) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"access_token": accessToken,
		"token_expiry": expiry,
	}, "failed to update access token")
}

// UpdateSyncStatus records the latest sync outcome.
func (repo *connectionRepository) UpdateSyncStatus(ctx context.Context, id uuid.UUID, status entity.SyncStatus, at time.Time) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"last_sync_status": string(status),
		"last_sync_at":     at,
	}, "failed to update sync status")
}

// UpdateMCCAccountID sets the manager account, or clears it when empty.
func (repo *connectionRepository) UpdateMCCAccountID(ctx context.Context, id uuid.UUID, mccAccountID string) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"mcc_account_id": nullString(mccAccountID),
	}, "failed to update manager account")
}

func (repo *connectionRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any, message string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GoogleConnectionModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return errors.Wrap(result.Error, message)
	}

	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// ListConnectionSummaries lists connections newest first with the number of clients using each.
func (repo *connectionRepository) ListConnectionSummaries(ctx context.Context) ([]*entity.ConnectionSummary, error) {
	var rows []*model.ConnectionSummaryRow

	if err := repo.db.WithContext(ctx).
		Table("google_connections AS gc").
		Select("gc.*, COUNT(c.id) AS client_count").
		Joins("LEFT JOIN clients c ON c.google_connection_id = gc.id").
		Group("gc.id").
		Order("gc.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	summaries := make([]*entity.ConnectionSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.ConnectionSummary{
			GoogleConnection: *toConnectionDomain(&row.GoogleConnectionModel),
			ClientCount:      row.ClientCount,
		})
	}

	return summaries, nil
}

// DeleteConnection removes a connection.
func (repo *connectionRepository) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GoogleConnectionModel{})

	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return domainerrors.ErrConnectionInUse
		}

		return errors.Wrap(result.Error, "failed to delete connection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toConnectionDomain(data *model.GoogleConnectionModel) *entity.GoogleConnection {
	if data == nil {
		return nil
	}

	return &entity.GoogleConnection{
		ID:             data.ID,
		GoogleEmail:    data.GoogleEmail,
		RefreshToken:   data.RefreshToken,
		AccessToken:    data.AccessToken,
		TokenExpiry:    data.TokenExpiry,
		MCCAccountID:   derefString(data.MCCAccountID),
		IsActive:       data.IsActive,
		LastSyncAt:     data.LastSyncAt,
		LastSyncStatus: entity.SyncStatus(derefString(data.LastSyncStatus)),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromConnectionDomain(data *entity.GoogleConnection) *model.GoogleConnectionModel {
	if data == nil {
		return nil
	}

	return &model.GoogleConnectionModel{
		ID:             data.ID,
		GoogleEmail:    data.GoogleEmail,
		RefreshToken:   data.RefreshToken,
		AccessToken:    data.AccessToken,
		TokenExpiry:    data.TokenExpiry,
		MCCAccountID:   nullString(data.MCCAccountID),
		IsActive:       data.IsActive,
		LastSyncAt:     data.LastSyncAt,
		LastSyncStatus: nullString(string(data.LastSyncStatus)),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
