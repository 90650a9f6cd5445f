package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"adpulse/internal/domain/service"
	"adpulse/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_NoWaitWhenHeld(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	held, err := locker.Obtain(ctx, "sweep", time.Minute, false)
	require.NoError(t, err)

	_, err = locker.Obtain(ctx, "sweep", time.Minute, false)
	assert.True(t, errors.Is(err, service.ErrLockNotObtained))

	other, err := locker.Obtain(ctx, "other-key", time.Minute, false)
	require.NoError(t, err, "keys are independent")
	require.NoError(t, other.Release(ctx))

	require.NoError(t, held.Release(ctx))

	again, err := locker.Obtain(ctx, "sweep", time.Minute, false)
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}

func TestLocalLocker_WaitHonoursContext(t *testing.T) {
	locker := NewLocalLocker()

	held, err := locker.Obtain(context.Background(), "conn", time.Minute, true)
	require.NoError(t, err)
	defer held.Release(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locker.Obtain(ctx, "conn", time.Minute, true)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestLocalLocker_SerialisesHolders(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	var (
		inside  int32
		maxSeen int32
		wg      sync.WaitGroup
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			held, err := locker.Obtain(ctx, "conn", time.Minute, true)
			if !assert.NoError(t, err) {
				return
			}

			n := atomic.AddInt32(&inside, 1)
			for {
				prev := atomic.LoadInt32(&maxSeen)
				if n <= prev || atomic.CompareAndSwapInt32(&maxSeen, prev, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)

			assert.NoError(t, held.Release(ctx))
		}()
	}

	wg.Wait()
	assert.Equal(t, int32(1), maxSeen)
}

func TestLocalLock_ReleaseIsIdempotent(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	held, err := locker.Obtain(ctx, "k", time.Minute, false)
	require.NoError(t, err)
	require.NoError(t, held.Release(ctx))
	require.NoError(t, held.Release(ctx))

	first, err := locker.Obtain(ctx, "k", time.Minute, false)
	require.NoError(t, err)
	_, err = locker.Obtain(ctx, "k", time.Minute, false)
	assert.Error(t, err, "double release must not free a second slot")
	require.NoError(t, first.Release(ctx))
}
