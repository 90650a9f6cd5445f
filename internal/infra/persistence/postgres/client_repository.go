package postgres

import (
	"context"

	"adpulse/internal/domain/entity"
	"adpulse/internal/domain/repository"
	"adpulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// clientRepository implements the repository.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// FindClientByID retrieves a client with its Google connection.
func (repo *clientRepository) FindClientByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Preload("GoogleConnection").
		Where("id = ?", id).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

// FindSyncableClients lists clients linked to a customer id through an active connection.
func (repo *clientRepository) FindSyncableClients(ctx context.Context) ([]*entity.Client, error) {
	var clientModels []*model.ClientModel

	if err := repo.db.WithContext(ctx).
		Joins("GoogleConnection").
		Where("clients.google_customer_id IS NOT NULL AND clients.google_customer_id <> ''").
		Where(`"GoogleConnection".is_active = ?`, true).
		Order("clients.company_name ASC").
		Find(&clientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find syncable clients")
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for _, clientM := range clientModels {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

// CountClientsByConnection counts clients that reference the connection.
func (repo *clientRepository) CountClientsByConnection(ctx context.Context, connectionID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("google_connection_id = ?", connectionID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count clients by connection")
	}

	return count, nil
}

// --- Mapper Functions ---

func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:                 data.ID,
		CompanyName:        data.CompanyName,
		MonthlyBudget:      data.MonthlyBudget.InexactFloat64(),
		Currency:           data.Currency,
		Status:             entity.ClientStatus(data.Status),
		Notes:              derefString(data.Notes),
		GoogleCustomerID:   derefString(data.GoogleCustomerID),
		GoogleConnectionID: data.GoogleConnectionID,
		GoogleConnection:   toConnectionDomain(data.GoogleConnection),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
