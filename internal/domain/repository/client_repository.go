package repository

import (
	"context"

	"adpulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrClientNotFound is returned when a client does not exist.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines read access to advertising clients.
type ClientRepository interface {
	// FindClientByID retrieves a client with its Google connection preloaded.
	FindClientByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindSyncableClients lists clients that have a customer id and an active connection,
	// with the connection preloaded.
	FindSyncableClients(ctx context.Context) ([]*entity.Client, error)

	// CountClientsByConnection counts clients referencing a connection.
	CountClientsByConnection(ctx context.Context, connectionID uuid.UUID) (int64, error)
}
