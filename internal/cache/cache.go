// Package cache provides an optional Redis-backed cache for slot query
// responses. A nil *SlotCache (no Redis configured) is safe to use and
// behaves as a pass-through.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"zapis/internal/metrics"
	"zapis/internal/model"
)

// SlotCache caches available-slot responses keyed by date and the selected
// service set. Entries are short-lived and invalidated on any write that
// touches the date.
type SlotCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// New creates a SlotCache. Returns nil when redisClient is nil or ttl is
// non-positive, which disables caching.
func New(redisClient *redis.Client, ttl time.Duration) *SlotCache {
	if redisClient == nil || ttl <= 0 {
		return nil
	}
	return &SlotCache{redis: redisClient, ttl: ttl}
}

func slotKey(date time.Time, serviceIDs []string) string {
	ids := append([]string(nil), serviceIDs...)
	sort.Strings(ids)
	return fmt.Sprintf("slots:%s:%s", date.Format(model.DateLayout), strings.Join(ids, ","))
}

// GetSlots returns the cached slot list for the query, if present.
func (c *SlotCache) GetSlots(ctx context.Context, date time.Time, serviceIDs []string) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.redis.Get(ctx, slotKey(date, serviceIDs)).Result()
	if err != nil {
		metrics.IncSlotCache(false)
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(val), &slots); err != nil {
		metrics.IncSlotCache(false)
		return nil, false
	}
	metrics.IncSlotCache(true)
	return slots, true
}

// SetSlots stores a slot list for the query. Failures are ignored; the
// cache is an optimization, never a source of truth.
func (c *SlotCache) SetSlots(ctx context.Context, date time.Time, serviceIDs []string, slots []string) {
	if c == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, slotKey(date, serviceIDs), data, c.ttl).Err()
}

// InvalidateDate drops every cached slot list for a date. Called after a
// booking or override write that changes that date's availability.
func (c *SlotCache) InvalidateDate(ctx context.Context, date time.Time) {
	if c == nil {
		return
	}

	pattern := fmt.Sprintf("slots:%s:*", date.Format(model.DateLayout))
	iter := c.redis.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		_ = c.redis.Del(ctx, iter.Val()).Err()
	}
}

// InvalidateAll drops every cached slot list. Used after override writes,
// which can affect arbitrary date ranges.
func (c *SlotCache) InvalidateAll(ctx context.Context) {
	if c == nil {
		return
	}

	iter := c.redis.Scan(ctx, 0, "slots:*", 0).Iterator()
	for iter.Next(ctx) {
		_ = c.redis.Del(ctx, iter.Val()).Err()
	}
}
