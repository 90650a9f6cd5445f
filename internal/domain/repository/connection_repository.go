// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"adpulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrConnectionNotFound is returned when a Google connection does not exist.
var ErrConnectionNotFound = errors.New("google connection not found")

// ConnectionRepository defines persistence for Google connections.
type ConnectionRepository interface {
	// FindConnectionByID retrieves a connection by its unique ID.
	FindConnectionByID(ctx context.Context, id uuid.UUID) (*entity.GoogleConnection, error)

	// UpsertConnectionByEmail inserts the connection or, when the email is already
	// known, replaces its tokens and reactivates it. The stored row is returned.
	UpsertConnectionByEmail(ctx context.Context, conn *entity.GoogleConnection) (*entity.GoogleConnection, error)

	// UpdateAccessToken persists a freshly refreshed access token and its expiry.
	UpdateAccessToken(ctx context.Context, id uuid.UUID, accessToken string, expiry time.Time) error

	// UpdateSyncStatus records the outcome of the latest sync.
	UpdateSyncStatus(ctx context.Context, id uuid.UUID, status entity.SyncStatus, at time.Time) error

	// UpdateMCCAccountID sets or clears the manager account used as login customer.
	UpdateMCCAccountID(ctx context.Context, id uuid.UUID, mccAccountID string) error

	// ListConnectionSummaries lists connections newest first with their client counts.
	ListConnectionSummaries(ctx context.Context) ([]*entity.ConnectionSummary, error)

	// DeleteConnection removes a connection.
	DeleteConnection(ctx context.Context, id uuid.UUID) error
}
