// Package postgres implements the repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"adpulse/internal/domain/repository"
	"adpulse/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories binds repositories to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewConnectionRepository() repository.ConnectionRepository {
	return NewConnectionRepository(f.tx)
}

func (f txRepositories) NewClientRepository() repository.ClientRepository {
	return NewClientRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil. An error or panic from fn rolls back;
// fn's error is returned unwrapped so callers can match on it.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "transaction failed")
}
