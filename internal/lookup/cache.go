package lookup

import (
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	result    *Result
	timestamp time.Time
}

// readingCache is a small in-process TTL cache keyed by normalized city
// name. A non-positive TTL disables it entirely; nothing is ever written
// to disk.
type readingCache struct {
	entries map[string]cacheEntry
	mutex   sync.RWMutex
	ttl     time.Duration
}

func newReadingCache(ttl time.Duration) *readingCache {
	return &readingCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func cacheKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

func (c *readingCache) get(key string) *Result {
	if c.ttl <= 0 {
		return nil
	}

	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists {
		return nil
	}

	if time.Since(entry.timestamp) > c.ttl {
		c.mutex.Lock()
		delete(c.entries, key)
		c.mutex.Unlock()
		return nil
	}

	return entry.result
}

func (c *readingCache) set(key string, result *Result) {
	if c.ttl <= 0 {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = cacheEntry{
		result:    result,
		timestamp: time.Now(),
	}
}

func (c *readingCache) clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func (c *readingCache) size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}
