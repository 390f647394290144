package news

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_TTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache(CacheOpts{Now: func() time.Time { return now }})

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Set("k", "v")

	now = now.Add(DefaultTTL - time.Millisecond)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	now = now.Add(time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry must expire exactly at ttl")

	v, ok = c.Stale("k")
	require.True(t, ok, "expired entry must still be available as stale")
	assert.Equal(t, "v", v)

	c.Set("k", "v2")
	v, ok = c.Get("k")
	require.True(t, ok, "set must refresh the timestamp")
	assert.Equal(t, "v2", v)

	st := c.Stat()
	assert.Equal(t, 2, st.Hits)
	assert.Equal(t, 2, st.Misses)
}

func TestCache_MaxKeys(t *testing.T) {
	c := NewCache(CacheOpts{MaxKeys: 2})

	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, ok := c.Stale("b")
	assert.False(t, ok, "least recently used entry must be evicted")
	_, ok = c.Stale("a")
	assert.True(t, ok)
	_, ok = c.Stale("c")
	assert.True(t, ok)
}

func TestKey(t *testing.T) {
	search := func(q string, page string, provider Provider) string {
		return Key(EndpointSearch, url.Values{"q": {q}, "page": {page}, "provider": {string(provider)}})
	}

	assert.Equal(t, "search:Technology:0:articlesearch", search("Technology", "0", ProviderSearch))
	assert.NotEqual(t, search("Technology", "0", ProviderSearch), search("Technology", "0", ProviderWire))
	assert.NotEqual(t, search("Technology", "0", ProviderSearch), search("Technology", "1", ProviderSearch))
	assert.NotEqual(t, search("Technology", "0", ProviderSearch), search("Science", "0", ProviderSearch))
	assert.NotEqual(t, search("a:1", "0", ProviderSearch), search("a", "1:0", ProviderSearch))

	assert.Equal(t, search("go", "", ""), search("go", "0", ProviderSearch), "defaults must be applied")

	// parameter order must not matter
	p1 := url.Values{}
	p1.Set("section", "all")
	p1.Set("offset", "20")
	p2 := url.Values{}
	p2.Set("offset", "20")
	p2.Set("section", "all")
	assert.Equal(t, Key(EndpointWire, p1), Key(EndpointWire, p2))
	assert.Equal(t, "timeswire:offset=20&section=all", Key(EndpointWire, p1))

	assert.NotEqual(t, Key(EndpointLocal, searchParams("x", 0)), Key(EndpointProgramming, searchParams("x", 0)))
}
