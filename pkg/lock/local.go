package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type lease struct {
	token    string
	expireAt time.Time
}

// LocalLocker keeps leases in process memory. It only serializes callers
// of a single instance.
type LocalLocker struct {
	mu            sync.Mutex
	leases        map[string]lease
	retryInterval time.Duration
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		leases:        make(map[string]lease),
		retryInterval: time.Millisecond * 5,
	}
}

func (l *LocalLocker) TryAcquire(ctx context.Context, key string, acquireTimeout, holdTimeout time.Duration) (string, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(acquireTimeout)

	for {
		if l.tryLock(key, token, holdTimeout) {
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

func (l *LocalLocker) tryLock(key, token string, holdTimeout time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if current, ok := l.leases[key]; ok && now.Before(current.expireAt) {
		return false
	}
	l.leases[key] = lease{token: token, expireAt: now.Add(holdTimeout)}
	return true
}

func (l *LocalLocker) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.leases[key]
	if !ok || current.token != token || !time.Now().Before(current.expireAt) {
		return ErrNotHeld
	}
	delete(l.leases, key)
	return nil
}
