package resource

import (
	"sync"
	"time"
)

// searchCache is a small TTL cache over provider search results, keeping
// repeated roadmap requests from hammering external APIs. Entries are never
// invalidated early, only expired by timestamp comparison on read.
type searchCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	at      time.Time
	records []Record
}

func newSearchCache(ttl time.Duration) *searchCache {
	return &searchCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *searchCache) get(key string) ([]Record, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.at) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.records, true
}

func (c *searchCache) put(key string, records []Record) {
	if c == nil || c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{at: c.now(), records: records}
}
