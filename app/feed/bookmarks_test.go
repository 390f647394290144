package feed

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Nachthirsch/News-App/app/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestBookmarks_AddDedup(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	b := NewBookmarks(slog.Default(), kv)
	require.NoError(t, b.Load(ctx))

	assert.True(t, b.Add(ctx, store.Article{WebURL: "x", Headline: store.Headline{Main: "first"}}))
	assert.False(t, b.Add(ctx, store.Article{WebURL: "x", Headline: store.Headline{Main: "second"}}))
	assert.True(t, b.Add(ctx, store.Article{WebURL: "y"}))

	list := b.List()
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Headline.Main)

	raw, err := kv.Load(ctx, BookmarksKey)
	require.NoError(t, err)
	var persisted []store.Article
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, list, persisted)
}

func TestBookmarks_Remove(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	b := NewBookmarks(slog.Default(), kv)

	b.Add(ctx, store.Article{WebURL: "x"})
	b.Add(ctx, store.Article{WebURL: "y"})

	assert.True(t, b.Remove(ctx, "x"))
	assert.False(t, b.Remove(ctx, "x"))
	assert.False(t, b.Contains("x"))
	assert.True(t, b.Contains("y"))

	raw, err := kv.Load(ctx, BookmarksKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"web_url":"y","headline":{"main":""},"abstract":"","source":"","byline":{"original":""},
		"images":{"small":null,"medium":null,"large":null,"inline":null},"image_url":"","is_from_wire_feed":false}]`, raw)

	b.Remove(ctx, "y")
	raw, err = kv.Load(ctx, BookmarksKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestBookmarks_Toggle(t *testing.T) {
	ctx := context.Background()
	b := NewBookmarks(slog.Default(), store.NewMemory())

	assert.True(t, b.Toggle(ctx, store.Article{WebURL: "x"}))
	assert.False(t, b.Toggle(ctx, store.Article{WebURL: "x"}))
	assert.Empty(t, b.List())
}

func TestBookmarks_ToggleConcurrent(t *testing.T) {
	ctx := context.Background()
	b := NewBookmarks(slog.Default(), store.NewMemory())

	const workers = 50
	var saved int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if b.Toggle(ctx, store.Article{WebURL: "x"}) {
				atomic.AddInt32(&saved, 1)
			}
		}()
	}
	wg.Wait()

	// toggles alternate, so exactly half of them saved the article
	assert.Equal(t, int32(workers/2), atomic.LoadInt32(&saved))
	assert.Empty(t, b.List())
}

type countingKV struct {
	store.KV
	saves int
}

func (c *countingKV) Save(ctx context.Context, key, value string) error {
	c.saves++
	return c.KV.Save(ctx, key, value)
}

func TestBookmarks_RemoveMissingDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	kv := &countingKV{KV: store.NewMemory()}
	b := NewBookmarks(slog.Default(), kv)

	assert.False(t, b.Remove(ctx, "x"))
	assert.Equal(t, 0, kv.saves)

	b.Add(ctx, store.Article{WebURL: "x"})
	assert.False(t, b.Remove(ctx, "y"))
	assert.Equal(t, 1, kv.saves)

	assert.True(t, b.Remove(ctx, "x"))
	assert.Equal(t, 2, kv.saves)
}

func TestBookmarks_Load(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Save(ctx, BookmarksKey, `[{"web_url":"a"},{"web_url":"b"},{"web_url":"a"}]`))

	b := NewBookmarks(slog.Default(), kv)
	require.NoError(t, b.Load(ctx))
	assert.Equal(t, []string{"a", "b"}, urls(b.List()))

	require.NoError(t, kv.Save(ctx, BookmarksKey, `not json`))
	require.NoError(t, b.Load(ctx))
	assert.Empty(t, b.List())
}

type failingKV struct{ err error }

func (f failingKV) Load(context.Context, string) (string, error) { return "", f.err }
func (f failingKV) Save(context.Context, string, string) error   { return f.err }

func TestBookmarks_StorageFailures(t *testing.T) {
	ctx := context.Background()
	b := NewBookmarks(slog.Default(), failingKV{err: errors.New("disk is full")})

	assert.Error(t, b.Load(ctx))

	// persisting is best-effort, the in-memory set is still updated
	assert.True(t, b.Add(ctx, store.Article{WebURL: "x"}))
	assert.True(t, b.Contains("x"))
}

func TestBookmarks_Bolt(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	db, err := store.NewBolt(dir)
	require.NoError(t, err)
	b := NewBookmarks(slog.Default(), db)
	require.NoError(t, b.Load(ctx))
	b.Add(ctx, store.Article{WebURL: "x"})
	require.NoError(t, db.Close())

	db, err = store.NewBolt(dir)
	require.NoError(t, err)
	defer db.Close()

	b = NewBookmarks(slog.Default(), db)
	require.NoError(t, b.Load(ctx))
	assert.Equal(t, []string{"x"}, urls(b.List()))
}
