// Package cache provides a small in-memory TTL cache.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TTLCache is a size-bounded cache whose entries expire after a fixed TTL.
// A non-positive TTL disables the cache: Get always misses and Set is a no-op.
type TTLCache[K comparable, V any] struct {
	cache *expirable.LRU[K, V]
}

// NewTTL creates a cache holding at most maxSize entries for ttl each.
func NewTTL[K comparable, V any](maxSize int, ttl time.Duration) *TTLCache[K, V] {
	if ttl <= 0 {
		return &TTLCache[K, V]{}
	}
	return &TTLCache[K, V]{cache: expirable.NewLRU[K, V](maxSize, nil, ttl)}
}

// Enabled reports whether entries are retained.
func (c *TTLCache[K, V]) Enabled() bool {
	return c.cache != nil
}

// Get returns the live entry for key.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	if c.cache == nil {
		var zero V
		return zero, false
	}
	return c.cache.Get(key)
}

// Set stores value under key, resetting its TTL.
func (c *TTLCache[K, V]) Set(key K, value V) {
	if c.cache == nil {
		return
	}
	c.cache.Add(key, value)
}

// Purge drops every entry.
func (c *TTLCache[K, V]) Purge() {
	if c.cache == nil {
		return
	}
	c.cache.Purge()
}
