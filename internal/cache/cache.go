// Package cache provides a generic in-memory TTL cache with
// get-or-fetch semantics.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache memoizes fetched values for a fixed window after each write.
// Failed fetches are never stored, so every miss retries. Concurrent
// misses for the same key are not deduplicated: each caller may invoke
// its own fetch and the last write wins.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache whose entries live for ttl after being written.
func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the live value for key, if any.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.expired(e) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry wholesale.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// GetOrFetch returns the live value for key, or invokes fetch and
// stores its result. An error from fetch propagates to the caller and
// leaves the cache untouched.
func (c *Cache[K, V]) GetOrFetch(key K, fetch func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := fetch()
	if err != nil {
		var zero V
		return zero, err
	}

	c.Set(key, v)
	return v, nil
}

// An entry whose deadline has arrived counts as expired.
func (c *Cache[K, V]) expired(e entry[V]) bool {
	return !c.now().Before(e.expiresAt)
}
