// Package notify fans committed balance changes out to the balance cache
// and the event stream.
package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

type Invalidator interface {
	Invalidate(ctx context.Context, memberID int64) error
}

type Publisher interface {
	Publish(ctx context.Context, event BalanceChanged) error
	Close() error
}

// Dispatcher evicts the cached balance synchronously, so the next read
// after a write misses the cache, and publishes the change on the pool.
type Dispatcher struct {
	invalidator Invalidator
	publisher   Publisher
	pool        WorkerPoolI
	now         func() time.Time
}

// NewDispatcher accepts a nil invalidator or publisher when that sink is
// not configured.
func NewDispatcher(invalidator Invalidator, publisher Publisher, workers int) *Dispatcher {
	d := &Dispatcher{
		invalidator: invalidator,
		publisher:   publisher,
		now:         time.Now,
	}
	if publisher != nil {
		d.pool = NewWorkerPool(workers)
	}
	return d
}

func (d *Dispatcher) OnBalanceChanged(ctx context.Context, memberID int64) {
	if d.invalidator != nil {
		if err := d.invalidator.Invalidate(context.WithoutCancel(ctx), memberID); err != nil {
			zap.L().Warn("failed to evict cached balance", zap.Int64("member_id", memberID), zap.Error(err))
		}
	}
	if d.publisher == nil {
		return
	}

	event := BalanceChanged{MemberID: memberID, OccurredAt: d.now().UTC()}
	err := d.pool.AddTask(ctx, func() error {
		pctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		return d.publisher.Publish(pctx, event)
	})
	if err != nil {
		zap.L().Warn("balance event dropped", zap.Int64("member_id", memberID), zap.Error(err))
	}
}

// Close drains pending publications and closes the publisher.
func (d *Dispatcher) Close() error {
	if d.publisher == nil {
		return nil
	}
	d.pool.Close()
	return d.publisher.Close()
}
