// Package lock provides named locks backed by Redis or, without Redis, by
// an in-process keyed mutex.
package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"adpulse/internal/domain/service"

	"github.com/bsm/redislock"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const retryBackoff = 100 * time.Millisecond

// LockerParams holds dependencies for the locker, injected by Fx
type LockerParams struct {
	fx.In

	Redis  *redis.Client `optional:"true"`
	Logger *slog.Logger
}

// NewLocker returns a Redis-backed locker when a client is available.
func NewLocker(params LockerParams) service.Locker {
	if params.Redis == nil {
		return NewLocalLocker()
	}

	return NewRedisLocker(params.Redis)
}

type redisLocker struct {
	client *redislock.Client
}

// NewRedisLocker creates a locker shared by every replica using the same Redis.
func NewRedisLocker(client redislock.RedisClient) service.Locker {
	return &redisLocker{client: redislock.New(client)}
}

func (l *redisLocker) Obtain(ctx context.Context, key string, ttl time.Duration, wait bool) (service.Lock, error) {
	opts := &redislock.Options{RetryStrategy: redislock.NoRetry()}
	if wait {
		// Retries until ctx is done, or for ttl when ctx has no deadline.
		opts.RetryStrategy = redislock.LinearBackoff(retryBackoff)
	}

	held, err := l.client.Obtain(ctx, key, ttl, opts)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, errors.WithStack(service.ErrLockNotObtained)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to obtain lock %s", key)
	}

	return &redisLock{lock: held}, nil
}

type redisLock struct {
	lock *redislock.Lock
}

func (l *redisLock) Release(ctx context.Context) error {
	err := l.lock.Release(ctx)
	if errors.Is(err, redislock.ErrLockNotHeld) {
		// expired while held
		return nil
	}

	return errors.WithStack(err)
}

// localLocker is a keyed mutex. TTL is ignored since a crashed holder
// takes the whole process with it.
type localLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewLocalLocker creates a process-local locker.
func NewLocalLocker() service.Locker {
	return &localLocker{slots: make(map[string]chan struct{})}
}

func (l *localLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}

	return ch
}

func (l *localLocker) Obtain(ctx context.Context, key string, _ time.Duration, wait bool) (service.Lock, error) {
	ch := l.slot(key)

	if !wait {
		select {
		case ch <- struct{}{}:
			return &localLock{ch: ch}, nil
		default:
			return nil, errors.WithStack(service.ErrLockNotObtained)
		}
	}

	select {
	case ch <- struct{}{}:
		return &localLock{ch: ch}, nil
	case <-ctx.Done():
		return nil, errors.Wrapf(ctx.Err(), "waiting for lock %s", key)
	}
}

type localLock struct {
	once sync.Once
	ch   chan struct{}
}

func (l *localLock) Release(context.Context) error {
	l.once.Do(func() { <-l.ch })

	return nil
}
