package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a single-instance Redis lease shared by every service
// replica.
type RedisLocker struct {
	client        redis.UniversalClient
	retryInterval time.Duration
}

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{
		client:        client,
		retryInterval: defaultRetryInterval,
	}
}

func (l *RedisLocker) TryAcquire(ctx context.Context, key string, acquireTimeout, holdTimeout time.Duration) (string, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(acquireTimeout)

	for {
		ok, err := l.client.SetNX(ctx, key, token, holdTimeout).Result()
		if err != nil {
			return "", fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			return token, nil
		}
		if !time.Now().Before(deadline) {
			return "", ErrNotAcquired
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(retryDelay(l.retryInterval, deadline)):
		}
	}
}

func (l *RedisLocker) Release(ctx context.Context, key, token string) error {
	released, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
	if err != nil {
		return fmt.Errorf("release lock %s: %w", key, err)
	}
	if released == 0 {
		return ErrNotHeld
	}
	return nil
}
