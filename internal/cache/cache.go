// Package cache keeps member balances in Redis in front of the ledger.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/GlebRadaev/pointledger/internal/service/pointservice"
)

const (
	keyPrefix        = "pointledger:balance:"
	generationPrefix = "pointledger:balance-gen:"
	generationTTL    = 24 * time.Hour
)

// storeScript writes a total only while the member generation still equals
// the one read before the ledger was queried.
var storeScript = redis.NewScript(`
local gen = redis.call("GET", KEYS[2]) or "0"
if gen ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

// Connect accepts either a redis:// URL or a bare host:port.
func Connect(ctx context.Context, address string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(address, "redis://") || strings.HasPrefix(address, "rediss://") {
		opt, err := redis.ParseURL(address)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: address})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// BalanceCache stores totals next to a per-member generation counter.
// Invalidate bumps the generation so a read that started before a write
// can not put its total back after the write's eviction.
type BalanceCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	now    func() time.Time
}

func NewBalanceCache(client redis.UniversalClient, ttl time.Duration) *BalanceCache {
	return &BalanceCache{client: client, ttl: ttl, now: time.Now}
}

func balanceKey(memberID int64) string {
	return keyPrefix + strconv.FormatInt(memberID, 10)
}

func generationKey(memberID int64) string {
	return generationPrefix + strconv.FormatInt(memberID, 10)
}

// Get reports ok=false on a cache miss.
func (c *BalanceCache) Get(ctx context.Context, memberID int64) (total int64, ok bool, err error) {
	total, err = c.client.Get(ctx, balanceKey(memberID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return total, true, nil
}

// Generation returns the member's current invalidation counter, "0" when
// the member was never invalidated.
func (c *BalanceCache) Generation(ctx context.Context, memberID int64) (string, error) {
	gen, err := c.client.Get(ctx, generationKey(memberID)).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return gen, err
}

// Store caches total unless the member was invalidated after gen was read.
func (c *BalanceCache) Store(ctx context.Context, memberID int64, gen string, total int64) (bool, error) {
	ttl := c.ttlAt(c.now())
	if ttl < time.Millisecond {
		return false, nil
	}
	keys := []string{balanceKey(memberID), generationKey(memberID)}
	stored, err := storeScript.Run(ctx, c.client, keys, gen, total, ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

func (c *BalanceCache) Invalidate(ctx context.Context, memberID int64) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(memberID))
		pipe.Expire(ctx, generationKey(memberID), generationTTL)
		pipe.Del(ctx, balanceKey(memberID))
		return nil
	})
	return err
}

// ttlAt caps the entry at the next local midnight. Earned points expire at
// the end of a day, so a total never outlives the day it was computed in.
func (c *BalanceCache) ttlAt(now time.Time) time.Duration {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	if until := midnight.Sub(now); until < c.ttl {
		return until
	}
	return c.ttl
}

// Ledger serves GetTotal from the cache and forwards everything else.
// Entries are dropped by the balance listener after each committed write.
type Ledger struct {
	pointservice.Ledger
	cache *BalanceCache
	group singleflight.Group
}

func Wrap(next pointservice.Ledger, cache *BalanceCache) *Ledger {
	return &Ledger{Ledger: next, cache: cache}
}

func (l *Ledger) GetTotal(ctx context.Context, memberID int64) (int64, error) {
	total, ok, err := l.cache.Get(ctx, memberID)
	if err != nil {
		zap.L().Warn("balance cache read failed", zap.Int64("member_id", memberID), zap.Error(err))
	}
	if ok {
		return total, nil
	}

	v, err, _ := l.group.Do(balanceKey(memberID), func() (any, error) {
		gen, genErr := l.cache.Generation(ctx, memberID)
		total, err := l.Ledger.GetTotal(ctx, memberID)
		if err != nil {
			return int64(0), err
		}
		if genErr != nil {
			zap.L().Warn("balance cache read failed", zap.Int64("member_id", memberID), zap.Error(genErr))
			return total, nil
		}
		if _, err := l.cache.Store(ctx, memberID, gen, total); err != nil {
			zap.L().Warn("balance cache write failed", zap.Int64("member_id", memberID), zap.Error(err))
		}
		return total, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}
