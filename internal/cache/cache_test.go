package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *SlotCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, time.Minute)
}

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestSlotCache_RoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	day := date(2025, time.October, 29)
	ids := []string{"svc-b", "svc-a"}

	_, ok := c.GetSlots(ctx, day, ids)
	assert.False(t, ok)

	slots := []string{"09:00", "09:15", "09:30"}
	c.SetSlots(ctx, day, ids, slots)

	got, ok := c.GetSlots(ctx, day, ids)
	require.True(t, ok)
	assert.Equal(t, slots, got)

	// Key ignores service order.
	got, ok = c.GetSlots(ctx, day, []string{"svc-a", "svc-b"})
	require.True(t, ok)
	assert.Equal(t, slots, got)

	// A different selection is a different entry.
	_, ok = c.GetSlots(ctx, day, []string{"svc-a"})
	assert.False(t, ok)
}

func TestSlotCache_InvalidateDate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	day := date(2025, time.October, 29)
	other := date(2025, time.October, 30)

	c.SetSlots(ctx, day, []string{"a"}, []string{"09:00"})
	c.SetSlots(ctx, day, []string{"b"}, []string{"10:00"})
	c.SetSlots(ctx, other, []string{"a"}, []string{"11:00"})

	c.InvalidateDate(ctx, day)

	_, ok := c.GetSlots(ctx, day, []string{"a"})
	assert.False(t, ok)
	_, ok = c.GetSlots(ctx, day, []string{"b"})
	assert.False(t, ok)
	_, ok = c.GetSlots(ctx, other, []string{"a"})
	assert.True(t, ok, "other dates keep their entries")
}

func TestSlotCache_InvalidateAll(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.SetSlots(ctx, date(2025, time.October, 29), []string{"a"}, []string{"09:00"})
	c.SetSlots(ctx, date(2025, time.November, 2), []string{"a"}, []string{"09:00"})

	c.InvalidateAll(ctx)

	_, ok := c.GetSlots(ctx, date(2025, time.October, 29), []string{"a"})
	assert.False(t, ok)
	_, ok = c.GetSlots(ctx, date(2025, time.November, 2), []string{"a"})
	assert.False(t, ok)
}

func TestSlotCache_NilSafe(t *testing.T) {
	var c *SlotCache
	ctx := context.Background()
	day := date(2025, time.October, 29)

	assert.Nil(t, New(nil, time.Minute))
	assert.Nil(t, New(&redis.Client{}, 0))

	c.SetSlots(ctx, day, []string{"a"}, []string{"09:00"})
	_, ok := c.GetSlots(ctx, day, []string{"a"})
	assert.False(t, ok)
	c.InvalidateDate(ctx, day)
	c.InvalidateAll(ctx)
}
