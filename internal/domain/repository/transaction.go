package repository

import "context"

// TransactionManager runs multi-step writes, such as storing a connection
// found by email, atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewConnectionRepository() ConnectionRepository
	NewClientRepository() ClientRepository
}
