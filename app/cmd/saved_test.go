package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/Nachthirsch/News-App/app/feed"
	"github.com/Nachthirsch/News-App/app/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestSaved_Execute(t *testing.T) {
	dir := t.TempDir()

	b, err := store.NewBolt(dir)
	require.NoError(t, err)

	bm := feed.NewBookmarks(slog.Default(), b)
	bm.Add(context.Background(), store.Article{WebURL: "https://example.com/a", Headline: store.Headline{Main: "first"}})
	bm.Add(context.Background(), store.Article{WebURL: "https://example.com/b", Headline: store.Headline{Main: "second"}})
	require.NoError(t, b.Close())

	buf := &bytes.Buffer{}
	err = Saved{StoreOpts: StoreOpts{StorePath: dir}, out: buf}.Execute(nil)
	require.NoError(t, err)
	assert.Equal(t, "1. first\n   https://example.com/a\n2. second\n   https://example.com/b\n", buf.String())
}

func TestSaved_ExecuteEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Saved{StoreOpts: StoreOpts{StorePath: t.TempDir()}, out: buf}.Execute(nil)
	require.NoError(t, err)
	assert.Equal(t, "no saved articles\n", buf.String())

	buf.Reset()
	err = Saved{out: buf}.Execute(nil)
	require.NoError(t, err)
	assert.Equal(t, "no saved articles\n", buf.String())
}
