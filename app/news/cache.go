package news

import (
	"fmt"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v2"
)

// DefaultTTL is a period during which a cached response is considered fresh.
const DefaultTTL = 5 * time.Minute

// Entry is a cached response.
type Entry struct {
	Data      any
	Timestamp time.Time
}

// CacheOpts defines parameters of the response cache.
type CacheOpts struct {
	TTL     time.Duration
	MaxKeys int // zero means unbounded
	Now     func() time.Time
}

// Cache keeps upstream responses by the logical request identity.
// Stale entries are not purged, they are ignored by Get and overwritten
// by the next Set.
type Cache struct {
	entries cache.Cache[string, Entry]
	ttl     time.Duration
	now     func() time.Time

	hits, misses int64
}

// NewCache makes a new response cache.
func NewCache(opts CacheOpts) *Cache {
	if opts.TTL == 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	entries := cache.NewCache[string, Entry]()
	if opts.MaxKeys > 0 {
		entries = entries.WithLRU().WithMaxKeys(opts.MaxKeys)
	}

	return &Cache{entries: entries, ttl: opts.TTL, now: opts.Now}
}

// Get returns data cached under the key, if it is still fresh.
func (c *Cache) Get(key string) (any, bool) {
	e, ok := c.entries.Get(key)
	if !ok || c.now().Sub(e.Timestamp) >= c.ttl {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}

	atomic.AddInt64(&c.hits, 1)
	return e.Data, true
}

// Stale returns data cached under the key regardless of its age.
func (c *Cache) Stale(key string) (any, bool) {
	e, ok := c.entries.Peek(key)
	if !ok {
		return nil, false
	}
	return e.Data, true
}

// Set puts data under the key with the current timestamp.
func (c *Cache) Set(key string, data any) {
	c.entries.Set(key, Entry{Data: data, Timestamp: c.now()}, 0)
}

// Stat returns cache statistics.
func (c *Cache) Stat() cache.Stats {
	st := c.entries.Stat()
	st.Hits = int(atomic.LoadInt64(&c.hits))
	st.Misses = int(atomic.LoadInt64(&c.misses))
	return st
}

// Key builds a cache key of the endpoint and its parameters.
// Search keys keep the query, page and provider in separate segments.
func Key(endpoint string, params url.Values) string {
	if endpoint == EndpointSearch && params.Get("q") != "" {
		page := params.Get("page")
		if _, err := strconv.Atoi(page); err != nil {
			page = "0"
		}

		provider := params.Get("provider")
		if provider == "" {
			provider = string(ProviderSearch)
		}

		return fmt.Sprintf("%s:%s:%s:%s", endpoint, url.QueryEscape(params.Get("q")), page, provider)
	}

	return endpoint + ":" + params.Encode()
}
