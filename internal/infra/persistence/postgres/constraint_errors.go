package postgres

import (
	"adpulse/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgForeignKeyViolation = "23503"

// isForeignKeyViolation detects a delete blocked by rows still referencing the
// target, e.g. a connection that clients point at.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	pgErr, ok := errors.AsType[*pgconn.PgError](err)

	return ok && pgErr.Code == pgForeignKeyViolation
}
