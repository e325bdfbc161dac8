package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pointledger/internal/service/pointservice"
)

func NewMock(t *testing.T) (*Ledger, *pointservice.MockLedger, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctrl := gomock.NewController(t)
	next := pointservice.NewMockLedger(ctrl)
	balances := NewBalanceCache(client, time.Minute)
	balances.now = func() time.Time { return time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC) }
	return Wrap(next, balances), next, mr
}

func TestLedger_GetTotal(t *testing.T) {
	ledger, next, mr := NewMock(t)
	ctx := context.Background()

	next.EXPECT().GetTotal(gomock.Any(), int64(1)).Return(int64(250), nil).Times(1)

	total, err := ledger.GetTotal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(250), total)

	total, err = ledger.GetTotal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(250), total)

	value, err := mr.Get("pointledger:balance:1")
	require.NoError(t, err)
	assert.Equal(t, "250", value)
	assert.Equal(t, time.Minute, mr.TTL("pointledger:balance:1"))
}

func TestLedger_GetTotalAfterInvalidate(t *testing.T) {
	ledger, next, _ := NewMock(t)
	ctx := context.Background()

	gomock.InOrder(
		next.EXPECT().GetTotal(gomock.Any(), int64(1)).Return(int64(100), nil),
		next.EXPECT().GetTotal(gomock.Any(), int64(1)).Return(int64(40), nil),
	)

	total, err := ledger.GetTotal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), total)

	require.NoError(t, ledger.cache.Invalidate(ctx, 1))

	total, err = ledger.GetTotal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(40), total)
}

func TestLedger_GetTotalInvalidatedDuringRead(t *testing.T) {
	ledger, next, mr := NewMock(t)
	ctx := context.Background()
	loaded := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		next.EXPECT().GetTotal(gomock.Any(), int64(1)).DoAndReturn(func(context.Context, int64) (int64, error) {
			close(loaded)
			<-release
			return 100, nil
		}),
		next.EXPECT().GetTotal(gomock.Any(), int64(1)).Return(int64(60), nil),
	)

	done := make(chan int64)
	go func() {
		total, err := ledger.GetTotal(ctx, 1)
		assert.NoError(t, err)
		done <- total
	}()

	<-loaded
	require.NoError(t, ledger.cache.Invalidate(ctx, 1))
	close(release)
	assert.Equal(t, int64(100), <-done)
	assert.False(t, mr.Exists("pointledger:balance:1"))

	total, err := ledger.GetTotal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(60), total)

	total, err = ledger.GetTotal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(60), total)
}

func TestBalanceCache_Invalidate(t *testing.T) {
	ledger, _, mr := NewMock(t)
	ctx := context.Background()
	balances := ledger.cache

	gen, err := balances.Generation(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "0", gen)

	stored, err := balances.Store(ctx, 3, gen, 20)
	require.NoError(t, err)
	assert.True(t, stored)

	require.NoError(t, balances.Invalidate(ctx, 3))
	assert.False(t, mr.Exists("pointledger:balance:3"))

	stored, err = balances.Store(ctx, 3, gen, 20)
	require.NoError(t, err)
	assert.False(t, stored)

	gen, err = balances.Generation(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "1", gen)
	assert.Equal(t, generationTTL, mr.TTL("pointledger:balance-gen:3"))
}

func TestBalanceCache_TTLEndsAtMidnight(t *testing.T) {
	ledger, _, mr := NewMock(t)
	ctx := context.Background()
	balances := ledger.cache

	tests := []struct {
		name   string
		now    time.Time
		ttl    time.Duration
		stored bool
	}{
		{
			name:   "Midday keeps configured TTL",
			now:    time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
			ttl:    time.Minute,
			stored: true,
		},
		{
			name:   "Late evening is cut at midnight",
			now:    time.Date(2024, time.March, 10, 23, 59, 30, 0, time.UTC),
			ttl:    30 * time.Second,
			stored: true,
		},
		{
			name:   "Last instant of the day is not cached",
			now:    time.Date(2024, time.March, 10, 23, 59, 59, int(time.Second-time.Microsecond), time.UTC),
			stored: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr.FlushAll()
			balances.now = func() time.Time { return tt.now }

			stored, err := balances.Store(ctx, 1, "0", 5)
			require.NoError(t, err)
			assert.Equal(t, tt.stored, stored)
			if tt.stored {
				assert.Equal(t, tt.ttl, mr.TTL("pointledger:balance:1"))
			} else {
				assert.False(t, mr.Exists("pointledger:balance:1"))
			}
		})
	}
}

func TestLedger_GetTotalExpiresWithTTL(t *testing.T) {
	ledger, next, mr := NewMock(t)
	ctx := context.Background()

	next.EXPECT().GetTotal(gomock.Any(), int64(1)).Return(int64(10), nil).Times(2)

	_, err := ledger.GetTotal(ctx, 1)
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	_, err = ledger.GetTotal(ctx, 1)
	require.NoError(t, err)
}

func TestLedger_GetTotalErrorNotCached(t *testing.T) {
	ledger, next, mr := NewMock(t)
	ctx := context.Background()
	dbErr := errors.New("db error")

	next.EXPECT().GetTotal(gomock.Any(), int64(1)).Return(int64(0), dbErr)

	_, err := ledger.GetTotal(ctx, 1)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, mr.Exists("pointledger:balance:1"))
}

func TestLedger_GetTotalRedisDown(t *testing.T) {
	ledger, next, mr := NewMock(t)
	ctx := context.Background()
	mr.Close()

	next.EXPECT().GetTotal(gomock.Any(), int64(1)).Return(int64(70), nil)

	total, err := ledger.GetTotal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(70), total)
}

func TestLedger_GetTotalCollapsesConcurrentMisses(t *testing.T) {
	ledger, next, _ := NewMock(t)
	ctx := context.Background()
	release := make(chan struct{})

	next.EXPECT().GetTotal(gomock.Any(), int64(1)).DoAndReturn(func(context.Context, int64) (int64, error) {
		<-release
		return 5, nil
	}).MinTimes(1).MaxTimes(2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			total, err := ledger.GetTotal(ctx, 1)
			assert.NoError(t, err)
			assert.Equal(t, int64(5), total)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
}

func TestLedger_ForwardsWrites(t *testing.T) {
	ledger, next, _ := NewMock(t)
	ctx := context.Background()

	next.EXPECT().RunExpirySweep(ctx).Return(2, nil)
	processed, err := ledger.RunExpirySweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), mr.Addr())
	require.NoError(t, err)
	assert.NoError(t, client.Close())

	client, err = Connect(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	assert.NoError(t, client.Close())

	_, err = Connect(context.Background(), "redis://%zz")
	assert.Error(t, err)
}
