// Package lock provides time-bounded per-key mutual exclusion. A lease is
// identified by an owner token so that only its holder can release it, and
// every lease expires on its own after the hold timeout.
package lock

import (
	"errors"
	"time"
)

const defaultRetryInterval = 50 * time.Millisecond

var (
	ErrNotAcquired = errors.New("lock not acquired within timeout")
	ErrNotHeld     = errors.New("lock is not held by this owner")
)

func retryDelay(interval time.Duration, deadline time.Time) time.Duration {
	if left := time.Until(deadline); left < interval {
		return left
	}
	return interval
}
