// Package metrics exposes Prometheus collectors for the point ledger and an
// instrumenting Ledger decorator.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/internal/service/pointservice"
)

var Operations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pointledger",
	Subsystem: "ledger",
	Name:      "operations_total",
	Help:      "Ledger operations by outcome.",
}, []string{"operation", "result"})

var OperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "pointledger",
	Subsystem: "ledger",
	Name:      "operation_duration_seconds",
	Help:      "Ledger operation latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"operation"})

var PointsMoved = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pointledger",
	Subsystem: "ledger",
	Name:      "points_total",
	Help:      "Absolute points moved by event type.",
}, []string{"type"})

var ExpiredGroups = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "pointledger",
	Subsystem: "sweep",
	Name:      "expired_groups_total",
	Help:      "Earn groups zeroed by the expiry sweep.",
})

var IntegrityFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pointledger",
	Subsystem: "ledger",
	Name:      "integrity_failures_total",
	Help:      "Internal ledger faults by kind.",
}, []string{"kind"})

// Result maps an operation error to a low-cardinality label value.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrBadEventType):
		return "invalid"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient"
	case errors.Is(err, domain.ErrConcurrencyBusy):
		return "busy"
	case errors.Is(err, domain.ErrAlreadyRolledBack):
		return "conflict"
	case errors.Is(err, domain.ErrEventNotFound), errors.Is(err, domain.ErrMemberNotFound):
		return "not_found"
	case domain.IsInternal(err):
		return "internal"
	}
	return "error"
}

func integrityKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrAmountBroken):
		return "amount_broken"
	case errors.Is(err, domain.ErrNotFifoOrder):
		return "not_fifo_order"
	case errors.Is(err, domain.ErrUseInfiniteLoop):
		return "use_infinite_loop"
	}
	return ""
}

// Ledger records metrics around every call to the wrapped ledger.
type Ledger struct {
	next pointservice.Ledger
}

func Instrument(next pointservice.Ledger) *Ledger {
	return &Ledger{next: next}
}

var _ pointservice.Ledger = (*Ledger)(nil)

func observe(operation string, start time.Time, err error) {
	OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	Operations.WithLabelValues(operation, Result(err)).Inc()
	if kind := integrityKind(err); kind != "" {
		IntegrityFailures.WithLabelValues(kind).Inc()
	}
}

func moved(event *domain.Event) {
	if event == nil {
		return
	}
	amount := event.Amount
	if amount < 0 {
		amount = -amount
	}
	PointsMoved.WithLabelValues(string(event.Type)).Add(float64(amount))
}

func (l *Ledger) Earn(ctx context.Context, memberID, amount int64, reference string) (*domain.Event, error) {
	start := time.Now()
	event, err := l.next.Earn(ctx, memberID, amount, reference)
	observe("earn", start, err)
	moved(event)
	return event, err
}

func (l *Ledger) Use(ctx context.Context, memberID, amount int64, reference string) (*domain.Event, error) {
	start := time.Now()
	event, err := l.next.Use(ctx, memberID, amount, reference)
	observe("use", start, err)
	moved(event)
	return event, err
}

func (l *Ledger) Rollback(ctx context.Context, eventID int64) (*domain.Event, error) {
	start := time.Now()
	event, err := l.next.Rollback(ctx, eventID)
	observe("rollback", start, err)
	moved(event)
	return event, err
}

func (l *Ledger) GetTotal(ctx context.Context, memberID int64) (int64, error) {
	start := time.Now()
	total, err := l.next.GetTotal(ctx, memberID)
	observe("get_total", start, err)
	return total, err
}

func (l *Ledger) GetEvent(ctx context.Context, eventID int64) (*domain.Event, error) {
	start := time.Now()
	event, err := l.next.GetEvent(ctx, eventID)
	observe("get_event", start, err)
	return event, err
}

func (l *Ledger) ListEvents(ctx context.Context, memberID int64, page, size int) (*domain.Page[domain.Event], error) {
	start := time.Now()
	result, err := l.next.ListEvents(ctx, memberID, page, size)
	observe("list_events", start, err)
	return result, err
}

func (l *Ledger) RunExpirySweep(ctx context.Context) (int, error) {
	start := time.Now()
	processed, err := l.next.RunExpirySweep(ctx)
	observe("expiry_sweep", start, err)
	ExpiredGroups.Add(float64(processed))
	return processed, err
}

func (l *Ledger) CheckConsistency(ctx context.Context, memberID int64) error {
	start := time.Now()
	err := l.next.CheckConsistency(ctx, memberID)
	observe("check_consistency", start, err)
	return err
}

func (l *Ledger) OverrideExpiry(ctx context.Context, eventID int64, expireAt time.Time) error {
	start := time.Now()
	err := l.next.OverrideExpiry(ctx, eventID, expireAt)
	observe("override_expiry", start, err)
	return err
}
