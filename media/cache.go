package media

import (
	"sync"
	"time"
)

// MaxProbeEntries bounds the cache; references past the bound are probed
// but not stored until a sweep frees room.
const MaxProbeEntries = 1024

type probeEntry struct {
	info    Info
	err     error
	fetched time.Time
}

// ProbeCache is an in-memory cache of probe results with TTL. Failures are
// cached too so a missing image is not re-read on every render. Expired
// entries are swept at most once per TTL, on the write path.
type ProbeCache struct {
	mu        sync.RWMutex
	entries   map[string]probeEntry
	ttl       time.Duration
	max       int
	lastSweep time.Time
	now       func() time.Time
}

// NewProbeCache creates a ProbeCache whose entries expire after ttl.
func NewProbeCache(ttl time.Duration) *ProbeCache {
	return &ProbeCache{
		entries: make(map[string]probeEntry),
		ttl:     ttl,
		max:     MaxProbeEntries,
		now:     time.Now,
	}
}

func (c *ProbeCache) valid(e probeEntry, ok bool) bool {
	return ok && c.now().Sub(e.fetched) < c.ttl
}

// Get returns the cached result for src, calling load when it is absent or
// stale. It tries a read lock first and only takes the write lock to reload.
func (c *ProbeCache) Get(src string, load func(string) (Info, error)) (Info, error) {
	c.mu.RLock()
	e, ok := c.entries[src]
	if c.valid(e, ok) {
		c.mu.RUnlock()
		return e.info, e.err
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[src]; c.valid(e, ok) {
		return e.info, e.err
	}
	info, err := load(src)
	now := c.now()
	if now.Sub(c.lastSweep) >= c.ttl {
		c.sweep(now)
	}
	if _, ok := c.entries[src]; ok || len(c.entries) < c.max {
		c.entries[src] = probeEntry{info: info, err: err, fetched: now}
	}
	return info, err
}

// sweep drops expired entries. c.mu must be held for writing.
func (c *ProbeCache) sweep(now time.Time) {
	for src, e := range c.entries {
		if now.Sub(e.fetched) >= c.ttl {
			delete(c.entries, src)
		}
	}
	c.lastSweep = now
}

// Len returns the number of cached entries, stale ones included.
func (c *ProbeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
