package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweeper struct {
	calls chan struct{}
	err   error
}

func (f *fakeSweeper) RunExpirySweep(ctx context.Context) (int, error) {
	f.calls <- struct{}{}
	return 2, f.err
}

func TestNextRun(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		hour     int
		minute   int
		expected time.Time
	}{
		{
			name:     "Later today",
			now:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			hour:     23,
			minute:   30,
			expected: time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC),
		},
		{
			name:     "Midnight is tomorrow",
			now:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			hour:     0,
			minute:   0,
			expected: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Exactly at run time",
			now:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			hour:     0,
			minute:   0,
			expected: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Month boundary",
			now:      time.Date(2026, 2, 28, 5, 0, 0, 0, time.UTC),
			hour:     4,
			minute:   0,
			expected: time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextRun(tt.now, tt.hour, tt.minute))
		})
	}
}

func TestSchedulerRunsSweep(t *testing.T) {
	for _, sweepErr := range []error{nil, errors.New("store down")} {
		sweeper := &fakeSweeper{calls: make(chan struct{}, 1), err: sweepErr}
		s := New(sweeper, 0, 0)
		s.now = func() time.Time { return time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC) }

		waits := make(chan time.Duration, 4)
		tick := make(chan time.Time)
		s.after = func(d time.Duration) <-chan time.Time {
			waits <- d
			return tick
		}

		ctx, cancel := context.WithCancel(context.Background())
		s.Start(ctx)

		assert.Equal(t, time.Minute, <-waits)
		tick <- time.Now()
		select {
		case <-sweeper.calls:
		case <-time.After(time.Second):
			t.Fatal("sweep was not triggered")
		}

		<-waits
		cancel()
		select {
		case <-s.Done():
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop")
		}
	}
}

func TestSchedulerStopsBeforeFirstRun(t *testing.T) {
	sweeper := &fakeSweeper{calls: make(chan struct{}, 1)}
	s := New(sweeper, 3, 0)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
	require.Empty(t, sweeper.calls)
}
