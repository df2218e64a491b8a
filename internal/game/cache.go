package game

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedSessionEntry wraps a session with version metadata for cache invalidation
type cachedSessionEntry struct {
	Version  string
	Session  *Session
	CachedAt time.Time
}

// Cache keeps recently active sessions in memory, keyed by session id.
// Entries expire after the TTL and the least recently used session is
// evicted once the cache is full.
type Cache struct {
	lru *expirable.LRU[string, *cachedSessionEntry]
}

// NewCache creates a session cache holding at most size sessions for ttl
func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{
		lru: expirable.NewLRU[string, *cachedSessionEntry](size, nil, ttl),
	}
}

// Get retrieves a session by id.
// Entries with a mismatched schema version are dropped.
func (c *Cache) Get(id string) (*Session, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}
	return entry.Session, true
}

// Put stores a session under its id
func (c *Cache) Put(s *Session) {
	c.lru.Add(s.ID(), &cachedSessionEntry{
		Version:  CacheSchemaVersion,
		Session:  s,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a session from the cache
func (c *Cache) Invalidate(id string) {
	c.lru.Remove(id)
}

// Len is the number of cached sessions
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.lru.Purge()
}
