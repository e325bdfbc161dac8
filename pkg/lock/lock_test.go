package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locker interface {
	TryAcquire(ctx context.Context, key string, acquireTimeout, holdTimeout time.Duration) (string, error)
	Release(ctx context.Context, key, token string) error
}

func newRedisLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	l := NewRedisLocker(client)
	l.retryInterval = time.Millisecond * 5
	return l, mr
}

func TestLockers(t *testing.T) {
	redisLocker, _ := newRedisLocker(t)

	tests := []struct {
		name   string
		locker locker
	}{
		{name: "Redis", locker: redisLocker},
		{name: "Local", locker: NewLocalLocker()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			key := "memberPointUseLock#1"

			token, err := tt.locker.TryAcquire(ctx, key, 10*time.Millisecond, time.Minute)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			_, err = tt.locker.TryAcquire(ctx, key, 20*time.Millisecond, time.Minute)
			assert.ErrorIs(t, err, ErrNotAcquired)

			other, err := tt.locker.TryAcquire(ctx, "memberPointUseLock#2", 10*time.Millisecond, time.Minute)
			require.NoError(t, err)
			assert.NotEqual(t, token, other)

			assert.ErrorIs(t, tt.locker.Release(ctx, key, "not-the-owner"), ErrNotHeld)
			assert.NoError(t, tt.locker.Release(ctx, key, token))
			assert.ErrorIs(t, tt.locker.Release(ctx, key, token), ErrNotHeld)

			token, err = tt.locker.TryAcquire(ctx, key, 10*time.Millisecond, time.Minute)
			require.NoError(t, err)
			assert.NoError(t, tt.locker.Release(ctx, key, token))
		})
	}
}

func TestRedisLocker_HoldTimeoutExpires(t *testing.T) {
	l, mr := newRedisLocker(t)
	ctx := context.Background()

	_, err := l.TryAcquire(ctx, "k", 10*time.Millisecond, 5*time.Second)
	require.NoError(t, err)

	mr.FastForward(6 * time.Second)

	token, err := l.TryAcquire(ctx, "k", 10*time.Millisecond, 5*time.Second)
	require.NoError(t, err)
	assert.NoError(t, l.Release(ctx, "k", token))
}

func TestLocalLocker_HoldTimeoutExpires(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	stale, err := l.TryAcquire(ctx, "k", 10*time.Millisecond, 20*time.Millisecond)
	require.NoError(t, err)

	token, err := l.TryAcquire(ctx, "k", time.Second, time.Minute)
	require.NoError(t, err)
	assert.ErrorIs(t, l.Release(ctx, "k", stale), ErrNotHeld)
	assert.NoError(t, l.Release(ctx, "k", token))
}

func TestRedisLocker_CanceledContext(t *testing.T) {
	l, _ := newRedisLocker(t)

	_, err := l.TryAcquire(context.Background(), "k", 10*time.Millisecond, time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.TryAcquire(ctx, "k", time.Second, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalLocker_MutualExclusion(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := l.TryAcquire(ctx, "k", 2*time.Second, time.Minute)
			if err != nil {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			_ = l.Release(ctx, "k", token)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside)
}
