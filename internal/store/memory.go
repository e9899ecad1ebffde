package store

import (
	"sync"
	"time"

	"github.com/vremea/weather-dashboard/internal/weather"
)

type entry struct {
	snapshot *weather.Snapshot
	storedAt time.Time
}

// SnapshotCache is a concurrency-safe in-memory snapshot cache with a
// per-entry TTL. A ttl of zero disables expiry.
type SnapshotCache struct {
	mu sync.RWMutex

	// key: resolved location key, value: latest snapshot for it
	data map[string]entry

	ttl time.Duration
	now func() time.Time
}

// NewSnapshotCache creates a cache whose entries expire after ttl.
func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get returns the cached snapshot for key, if present and fresh.
func (c *SnapshotCache) Get(key string) (*weather.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[key]
	if !ok || c.expired(e) {
		return nil, false
	}
	return e.snapshot, true
}

// Put stores a snapshot under key, replacing any previous entry wholesale.
func (c *SnapshotCache) Put(key string, snapshot *weather.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = entry{snapshot: snapshot, storedAt: c.now()}
}

// Entries returns the live (non-expired) cache entries. Expired entries are
// dropped on the way out.
func (c *SnapshotCache) Entries() []weather.CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]weather.CacheEntry, 0, len(c.data))
	for key, e := range c.data {
		if c.expired(e) {
			delete(c.data, key)
			continue
		}
		entries = append(entries, weather.CacheEntry{Key: key, Snapshot: e.snapshot})
	}
	return entries
}

func (c *SnapshotCache) expired(e entry) bool {
	return c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl
}
