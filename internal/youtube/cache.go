package youtube

import (
	"sync"
	"time"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/rs/zerolog/log"
)

// DefaultCacheTTL is how long cached API responses stay valid.
const DefaultCacheTTL = 30 * time.Minute

// Cache is an in-memory TTL cache for API responses, keyed by a hash of
// the request parameters. It exists to stretch the API quota: repeated
// searches for the same query within the TTL cost nothing. A nil *Cache
// is valid and caches nothing.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64]cacheEntry
	ttl     time.Duration

	now func() time.Time
}

type cacheEntry struct {
	results []Result
	expires time.Time
}

// NewCache creates a cache with the given TTL. A non-positive TTL uses
// DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		entries: make(map[uint64]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached results for the request key, if present and
// fresh.
func (c *Cache) Get(key any) ([]Result, bool) {
	if c == nil {
		return nil, false
	}
	h, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	if err != nil {
		log.Debug().Err(err).Msg("cache key hash failed")
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[h]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, h)
		return nil, false
	}
	return append([]Result(nil), entry.results...), true
}

// Put stores results under the request key.
func (c *Cache) Put(key any, results []Result) {
	if c == nil {
		return
	}
	h, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	if err != nil {
		log.Debug().Err(err).Msg("cache key hash failed")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[h] = cacheEntry{
		results: append([]Result(nil), results...),
		expires: c.now().Add(c.ttl),
	}
}
