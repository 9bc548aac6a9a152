package repository

import (
	"context"
	"sync"
	"time"
)

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository with lazy TTL expiry. It is
// the default backend for single-instance deployments.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates a new MemoryCache with the given entry TTL
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached value for key, if present and not expired
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		// re-check: a Set may have refreshed the entry in between
		if e, ok := c.entries[key]; ok && c.now().After(e.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key for the configured TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Clear drops all entries
func (c *MemoryCache) Clear(ctx context.Context) {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Close is a no-op for the in-process cache
func (c *MemoryCache) Close() error {
	return nil
}
