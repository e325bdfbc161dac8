package pointservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/pkg/lock"
)

const member = int64(7)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newLedger(t *testing.T, pageSize int) (*Service, *memStore, *testClock) {
	t.Helper()
	store := newMemStore()
	clock := &testClock{now: time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)}
	service := New(memEvents{store}, memDetails{store}, store, lock.NewLocalLocker(), nil, nil, Config{PageSize: pageSize})
	service.now = clock.Now
	return service, store, clock
}

func mustEarn(t *testing.T, s *Service, amount int64) *domain.Event {
	t.Helper()
	event, err := s.Earn(context.Background(), member, amount, "")
	require.NoError(t, err)
	return event
}

func total(t *testing.T, s *Service) int64 {
	t.Helper()
	value, err := s.GetTotal(context.Background(), member)
	require.NoError(t, err)
	return value
}

func TestLedger_RoundTrip(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newLedger(t, 100)

	mustEarn(t, service, 300)
	assert.Equal(t, int64(300), total(t, service))

	use, err := service.Use(ctx, member, 120, "")
	require.NoError(t, err)
	assert.Equal(t, int64(-120), use.Amount)
	assert.Nil(t, use.ExpireAt)
	assert.Equal(t, int64(180), total(t, service))

	rollback, err := service.Rollback(ctx, use.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventRollback, rollback.Type)
	assert.Equal(t, int64(120), rollback.Amount)
	require.NotNil(t, rollback.RollbackOf)
	assert.Equal(t, use.ID, *rollback.RollbackOf)
	assert.Equal(t, int64(300), total(t, service))

	assert.NoError(t, service.CheckConsistency(ctx, member))
}

func TestLedger_FIFOAllocation(t *testing.T) {
	ctx := context.Background()
	service, store, clock := newLedger(t, 100)

	mustEarn(t, service, 100)
	clock.Advance(time.Minute)
	mustEarn(t, service, 200)

	use, err := service.Use(ctx, member, 150, "")
	require.NoError(t, err)

	groups, err := memDetails{store}.FindGroupRemainders(ctx, member)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, int64(0), groups[0].Remain)
	assert.Equal(t, int64(150), groups[1].Remain)

	details, err := memDetails{store}.FindRefundLineage(ctx, use.ID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, int64(-100), details[0].Amount)
	assert.Equal(t, groups[0].GroupID, *details[0].GroupID)
	assert.Equal(t, groups[0].ExpireAt, details[0].ExpireAt)
	assert.Equal(t, int64(-50), details[1].Amount)
	assert.Equal(t, groups[1].GroupID, *details[1].GroupID)

	assert.NoError(t, service.CheckConsistency(ctx, member))
}

func TestLedger_AllocationSpansPages(t *testing.T) {
	ctx := context.Background()
	service, store, clock := newLedger(t, 2)

	for i := 0; i < 5; i++ {
		mustEarn(t, service, 10)
		clock.Advance(time.Second)
	}

	use, err := service.Use(ctx, member, 45, "")
	require.NoError(t, err)

	details, err := memDetails{store}.FindRefundLineage(ctx, use.ID)
	require.NoError(t, err)
	require.Len(t, details, 5)
	assert.Equal(t, int64(-5), details[4].Amount)
	assert.Equal(t, int64(5), total(t, service))
	assert.NoError(t, service.CheckConsistency(ctx, member))
}

func TestLedger_SameTimestampTieBreak(t *testing.T) {
	ctx := context.Background()
	service, store, _ := newLedger(t, 100)

	mustEarn(t, service, 50)
	mustEarn(t, service, 50)

	use, err := service.Use(ctx, member, 50, "")
	require.NoError(t, err)

	details, err := memDetails{store}.FindRefundLineage(ctx, use.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)

	groups, err := memDetails{store}.FindGroupRemainders(ctx, member)
	require.NoError(t, err)
	assert.Less(t, groups[0].GroupID, groups[1].GroupID)
	assert.Equal(t, groups[0].GroupID, *details[0].GroupID)
	assert.Equal(t, int64(0), groups[0].Remain)
	assert.Equal(t, int64(50), groups[1].Remain)
}

func TestLedger_InsufficientBalance(t *testing.T) {
	service, _, _ := newLedger(t, 100)

	mustEarn(t, service, 100)
	_, err := service.Use(context.Background(), member, 101, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, int64(100), total(t, service))
}

func TestLedger_InvalidAmounts(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newLedger(t, 100)

	_, err := service.Earn(ctx, member, -1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = service.Earn(ctx, 0, 10, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = service.Use(ctx, member, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	zero, err := service.Earn(ctx, member, 0, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), zero.Amount)
}

func TestLedger_RollbackTwice(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newLedger(t, 100)

	mustEarn(t, service, 100)
	use, err := service.Use(ctx, member, 60, "")
	require.NoError(t, err)

	_, err = service.Rollback(ctx, use.ID)
	require.NoError(t, err)
	_, err = service.Rollback(ctx, use.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyRolledBack)
	assert.Equal(t, int64(100), total(t, service))
}

func TestLedger_RollbackRejections(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newLedger(t, 100)

	earn := mustEarn(t, service, 100)
	_, err := service.Rollback(ctx, earn.ID)
	assert.ErrorIs(t, err, domain.ErrBadEventType)

	_, err = service.Rollback(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestLedger_ExpirySweepIdempotent(t *testing.T) {
	ctx := context.Background()
	service, store, clock := newLedger(t, 100)

	mustEarn(t, service, 100)
	_, err := service.Use(ctx, member, 30, "")
	require.NoError(t, err)

	processed, err := service.RunExpirySweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, processed)

	clock.Advance(13 * 30 * 24 * time.Hour)
	processed, err = service.RunExpirySweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	processed, err = service.RunExpirySweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, processed)

	groups, err := memDetails{store}.FindGroupRemainders(ctx, member)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(0), groups[0].Remain)
	assert.Equal(t, int64(0), total(t, service))

	page, err := service.ListEvents(ctx, member, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.EventExpire, page.Items[0].Type)
	assert.Equal(t, int64(-70), page.Items[0].Amount)
	assert.Nil(t, page.Items[0].ExpireAt)

	assert.NoError(t, service.CheckConsistency(ctx, member))
}

func TestLedger_OverrideExpiry(t *testing.T) {
	ctx := context.Background()
	service, _, clock := newLedger(t, 100)

	earn := mustEarn(t, service, 100)
	use, err := service.Use(ctx, member, 10, "")
	require.NoError(t, err)

	assert.ErrorIs(t, service.OverrideExpiry(ctx, use.ID, clock.Now()), domain.ErrBadEventType)
	require.NoError(t, service.OverrideExpiry(ctx, earn.ID, clock.Now().Add(-time.Hour)))
	assert.Equal(t, int64(0), total(t, service))

	processed, err := service.RunExpirySweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestLedger_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newLedger(t, 100)
	mustEarn(t, service, 100)

	const callers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		failures  []error
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Use(ctx, member, 100, "")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			failures = append(failures, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	require.Len(t, failures, callers-1)
	for _, err := range failures {
		if !errors.Is(err, domain.ErrConcurrencyBusy) {
			assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		}
	}
	assert.Equal(t, int64(0), total(t, service))
	assert.NoError(t, service.CheckConsistency(ctx, member))
}

func TestLedger_PartialRollbackBreaksFIFO(t *testing.T) {
	ctx := context.Background()
	service, _, clock := newLedger(t, 100)

	mustEarn(t, service, 100)
	clock.Advance(time.Minute)
	mustEarn(t, service, 100)

	first, err := service.Use(ctx, member, 50, "")
	require.NoError(t, err)
	_, err = service.Use(ctx, member, 100, "")
	require.NoError(t, err)

	_, err = service.Rollback(ctx, first.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, service.CheckConsistency(ctx, member), domain.ErrNotFifoOrder)
}

func TestLedger_ListEvents(t *testing.T) {
	ctx := context.Background()
	service, _, clock := newLedger(t, 100)

	for i := 0; i < 3; i++ {
		mustEarn(t, service, 10)
		clock.Advance(time.Second)
	}
	_, err := service.Use(ctx, member, 5, "")
	require.NoError(t, err)

	page, err := service.ListEvents(ctx, member, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Equal(t, 2, page.TotalPages())
	require.Len(t, page.Items, 2)
	assert.Equal(t, domain.EventUse, page.Items[0].Type)

	page, err = service.ListEvents(ctx, member, 2, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	page, err = service.ListEvents(ctx, member, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, defaultListSize, page.Size)
	assert.Len(t, page.Items, 4)
}

func TestLedger_GetEvent(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newLedger(t, 100)

	earn := mustEarn(t, service, 40)

	event, err := service.GetEvent(ctx, earn.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventEarn, event.Type)
	assert.Equal(t, int64(40), event.Amount)
	assert.Equal(t, member, event.MemberID)

	_, err = service.GetEvent(ctx, earn.ID+100)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

// lineageBarrier lets every caller read the refund lineage before any of
// them writes, so concurrent rollbacks all see the same unreversed details.
type lineageBarrier struct {
	memDetails
	read *sync.WaitGroup
}

func (b lineageBarrier) FindRefundLineage(ctx context.Context, eventID int64) ([]domain.Detail, error) {
	lineage, err := b.memDetails.FindRefundLineage(ctx, eventID)
	b.read.Done()
	b.read.Wait()
	return lineage, err
}

func TestLedger_ConcurrentRollback(t *testing.T) {
	ctx := context.Background()
	service, store, clock := newLedger(t, 100)

	mustEarn(t, service, 100)
	clock.Advance(time.Second)
	mustEarn(t, service, 50)
	use, err := service.Use(ctx, member, 130, "")
	require.NoError(t, err)
	assert.Equal(t, int64(20), total(t, service))

	const callers = 2
	var read sync.WaitGroup
	read.Add(callers)
	service.detailRepo = lineageBarrier{memDetails: memDetails{store}, read: &read}

	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		go func() {
			_, err := service.Rollback(ctx, use.ID)
			results <- err
		}()
	}

	var successes int
	for i := 0; i < callers; i++ {
		err := <-results
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrAlreadyRolledBack)
	}
	assert.Equal(t, 1, successes)

	var rollbacks int
	for _, e := range store.events {
		if e.Type == domain.EventRollback {
			rollbacks++
		}
	}
	assert.Equal(t, 1, rollbacks)

	service.detailRepo = memDetails{store}
	assert.Equal(t, int64(150), total(t, service))
	assert.NoError(t, service.CheckConsistency(ctx, member))
}

func TestMemDetails_RejectsSecondReversal(t *testing.T) {
	ctx := context.Background()
	service, store, _ := newLedger(t, 100)

	mustEarn(t, service, 100)
	use, err := service.Use(ctx, member, 40, "")
	require.NoError(t, err)

	lineage, err := memDetails{store}.FindRefundLineage(ctx, use.ID)
	require.NoError(t, err)
	require.Len(t, lineage, 1)
	_, err = service.Rollback(ctx, use.ID)
	require.NoError(t, err)

	refundID := lineage[0].ID
	_, err = memDetails{store}.Create(ctx, &domain.Detail{
		Type:     domain.EventRollback,
		GroupID:  lineage[0].GroupID,
		RefundID: &refundID,
		Amount:   40,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyRolledBack)
}
