package usecase

import (
	"context"

	"adpulse/internal/domain/entity"
	"adpulse/internal/domain/service"

	"github.com/google/uuid"
)

// CallbackInput carries the query parameters of the OAuth redirect.
type CallbackInput struct {
	Code  string
	State string
	Error string
}

// ConnectionUsecase manages the Google accounts the agency has authorised.
type ConnectionUsecase interface {
	// BeginConnect returns the consent URL to redirect the operator to.
	BeginConnect(ctx context.Context) (string, error)

	// CompleteConnect finishes the OAuth flow and stores the connection.
	CompleteConnect(ctx context.Context, input *CallbackInput) (*entity.GoogleConnection, error)

	// ListConnections lists connections with the number of clients using each.
	ListConnections(ctx context.Context) ([]*entity.ConnectionSummary, error)

	// Disconnect deletes a connection no client references.
	Disconnect(ctx context.Context, connectionID uuid.UUID) error

	// SetManagerAccount sets or clears the manager account of a connection.
	SetManagerAccount(ctx context.Context, connectionID uuid.UUID, mccAccountID string) error

	// ListAccessibleAccounts lists the accounts reachable through the manager account.
	ListAccessibleAccounts(ctx context.Context, connectionID uuid.UUID) ([]service.AdsAccount, error)
}
