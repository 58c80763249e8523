// Package cache provides the process-local TTL cache that sits in front of
// every remote-store read. Entries are non-durable and leave only through
// expiry-on-access or explicit invalidation; there is no size bound because
// key cardinality is small (a handful of singleton keys plus one per star
// type, scoped per user).
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	data      any
	expiresAt time.Time
}

// Cache is a string-keyed map with per-entry expiration. One instance is
// constructed at startup and shared by all repositories. Unlike the browser
// client this server handles requests concurrently, so the map is guarded
// by a mutex.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time // injectable for tests
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the stored value for key. The second return value reports
// whether the key was present and fresh, so callers can cache zero values
// (a count of 0, an empty slice) without them reading as misses. Expired
// entries are evicted lazily here, not swept proactively.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.data, true
}

// Set stores data under key for the given TTL, overwriting any existing
// entry unconditionally.
func (c *Cache) Set(key string, data any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{data: data, expiresAt: c.now().Add(ttl)}
}

// Invalidate removes one entry; no-op if absent.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidatePattern removes every key containing the given substring. Used
// to drop a whole family of per-type keys in one call.
func (c *Cache) InvalidatePattern(pattern string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.Contains(key, pattern) {
			delete(c.entries, key)
		}
	}
}

// Clear removes everything. Used on account deletion, where the principal
// itself is gone.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Stats describes cache occupancy at a point in time.
type Stats struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Expired int `json:"expired"`
}

// Stats counts stored entries without evicting them.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	s := Stats{Total: len(c.entries)}
	for _, e := range c.entries {
		if now.After(e.expiresAt) {
			s.Expired++
		} else {
			s.Valid++
		}
	}
	return s
}
