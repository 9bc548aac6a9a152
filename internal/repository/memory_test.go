package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryCache(ttl time.Duration) (*MemoryCache, *time.Time) {
	cache := NewMemoryCache(ttl)
	current := time.Date(2024, 4, 25, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }
	return cache, &current
}

func TestMemoryCache_GetSet(t *testing.T) {
	cache, _ := newTestMemoryCache(5 * time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "stats:a", []byte("payload"))

	value, ok := cache.Get(ctx, "stats:a")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), value)

	_, ok = cache.Get(ctx, "stats:missing")
	assert.False(t, ok)
}

func TestMemoryCache_Overwrite(t *testing.T) {
	cache, _ := newTestMemoryCache(5 * time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "stats:a", []byte("old"))
	cache.Set(ctx, "stats:a", []byte("new"))

	value, ok := cache.Get(ctx, "stats:a")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache, current := newTestMemoryCache(5 * time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "stats:a", []byte("payload"))

	*current = current.Add(4 * time.Minute)
	_, ok := cache.Get(ctx, "stats:a")
	assert.True(t, ok)

	*current = current.Add(2 * time.Minute)
	_, ok = cache.Get(ctx, "stats:a")
	assert.False(t, ok)

	// expired entry is gone for good, even if the clock went backwards
	*current = current.Add(-3 * time.Minute)
	_, ok = cache.Get(ctx, "stats:a")
	assert.False(t, ok)
}

func TestMemoryCache_SetRefreshesTTL(t *testing.T) {
	cache, current := newTestMemoryCache(5 * time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "stats:a", []byte("v1"))

	*current = current.Add(4 * time.Minute)
	cache.Set(ctx, "stats:a", []byte("v2"))

	*current = current.Add(4 * time.Minute)
	value, ok := cache.Get(ctx, "stats:a")
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), value)
}

func TestMemoryCache_Clear(t *testing.T) {
	cache, _ := newTestMemoryCache(5 * time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "stats:a", []byte("a"))
	cache.Set(ctx, "stats:b", []byte("b"))

	cache.Clear(ctx)

	_, ok := cache.Get(ctx, "stats:a")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "stats:b")
	assert.False(t, ok)
}

func TestMemoryCache_Close(t *testing.T) {
	cache, _ := newTestMemoryCache(time.Minute)
	assert.NoError(t, cache.Close())
}
