package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrLockNotObtained is returned by Obtain when wait is false and the key is held.
var ErrLockNotObtained = errors.New("lock not obtained")

// Lock is a held lock.
type Lock interface {
	Release(ctx context.Context) error
}

// Locker hands out named locks. Implementations may be process-local or shared
// between replicas.
type Locker interface {
	// Obtain acquires key for at most ttl. When wait is true it blocks until the
	// key is free or ctx is done.
	Obtain(ctx context.Context, key string, ttl time.Duration, wait bool) (Lock, error)
}
