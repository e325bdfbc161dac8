package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/pkg/logger"
)

type Sweeper interface {
	RunExpirySweep(ctx context.Context) (int, error)
}

// Scheduler triggers the expiry sweep once a day at a fixed local time.
type Scheduler struct {
	sweeper Sweeper
	hour    int
	minute  int
	now     func() time.Time
	after   func(d time.Duration) <-chan time.Time
	done    chan struct{}
	log     *zap.Logger
}

func New(sweeper Sweeper, hour, minute int) *Scheduler {
	return &Scheduler{
		sweeper: sweeper,
		hour:    hour,
		minute:  minute,
		now:     time.Now,
		after:   time.After,
		done:    make(chan struct{}),
		log:     logger.Named("scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("Expiry scheduler started", zap.Time("next_run", NextRun(s.now(), s.hour, s.minute)))
	go s.run(ctx)
}

// Done is closed once the scheduler loop has returned.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	for {
		now := s.now()
		wait := NextRun(now, s.hour, s.minute).Sub(now)

		select {
		case <-ctx.Done():
			s.log.Info("Context canceled, stopping expiry scheduler")
			return
		case <-s.after(wait):
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	started := s.now()
	processed, err := s.sweeper.RunExpirySweep(ctx)
	if err != nil {
		s.log.Error("Scheduled expiry sweep failed", zap.Int("processed", processed), zap.Error(err))
		return
	}
	s.log.Info("Scheduled expiry sweep finished",
		zap.Int("processed", processed),
		zap.Duration("took", s.now().Sub(started)),
	)
}

// NextRun returns the first hour:minute strictly after now, in now's location.
func NextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
