package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Nachthirsch/News-App/app/store"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
)

// BookmarksKey is a storage key of the saved articles.
const BookmarksKey = "savedNews"

// Bookmarks is a set of saved articles, unique by their url.
// Every mutation is persisted to the storage.
type Bookmarks struct {
	log *slog.Logger
	kv  store.KV

	mu    sync.RWMutex
	items []store.Article
}

// NewBookmarks makes an empty set of bookmarks over the storage.
func NewBookmarks(lg *slog.Logger, kv store.KV) *Bookmarks {
	return &Bookmarks{log: lg, kv: kv}
}

// Load reads saved articles from the storage. A corrupted record is
// logged and treated as empty.
func (b *Bookmarks) Load(ctx context.Context) error {
	raw, err := b.kv.Load(ctx, BookmarksKey)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("load saved articles: %w", err)
	}

	var items []store.Article
	if raw != "" {
		if err = json.Unmarshal([]byte(raw), &items); err != nil {
			b.log.WarnCtx(ctx, "failed to parse saved articles, starting empty", slog.Any("err", err))
			items = nil
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = lo.UniqBy(items, func(a store.Article) string { return a.WebURL })
	return nil
}

// Add saves the article, unless an article with the same url is already saved.
// Returns true if the article was added.
func (b *Bookmarks) Add(ctx context.Context, a store.Article) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, found := b.find(a.WebURL); found {
		return false
	}

	b.items = append(b.items, a)
	b.persist(ctx)
	return true
}

// Remove removes the article with the url.
// Returns true if anything was removed.
func (b *Bookmarks) Remove(ctx context.Context, webURL string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.remove(ctx, webURL)
}

// Toggle saves the article if it is not saved, and removes it otherwise.
// Returns true if the article is saved after the call.
func (b *Bookmarks) Toggle(ctx context.Context, a store.Article) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.remove(ctx, a.WebURL) {
		return false
	}

	b.items = append(b.items, a)
	b.persist(ctx)
	return true
}

// remove drops the article with the url, the storage is written only
// if anything was removed. Must be called under the write lock.
func (b *Bookmarks) remove(ctx context.Context, webURL string) bool {
	before := len(b.items)
	b.items = lo.Filter(b.items, func(a store.Article, _ int) bool { return a.WebURL != webURL })
	if len(b.items) == before {
		return false
	}

	b.persist(ctx)
	return true
}

// Contains reports whether the article with the url is saved.
func (b *Bookmarks) Contains(webURL string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, found := b.find(webURL)
	return found
}

// List returns all saved articles in the order they were saved.
func (b *Bookmarks) List() []store.Article {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]store.Article(nil), b.items...)
}

func (b *Bookmarks) find(webURL string) (store.Article, bool) {
	return lo.Find(b.items, func(a store.Article) bool { return a.WebURL == webURL })
}

// persist writes the whole set to the storage, failures are only logged.
func (b *Bookmarks) persist(ctx context.Context) {
	items := b.items
	if items == nil {
		items = []store.Article{}
	}

	bts, err := json.Marshal(items)
	if err != nil {
		b.log.ErrorCtx(ctx, "failed to marshal saved articles", slog.Any("err", err))
		return
	}

	if err = b.kv.Save(ctx, BookmarksKey, string(bts)); err != nil {
		b.log.ErrorCtx(ctx, "failed to persist saved articles", slog.Any("err", err))
	}
}
