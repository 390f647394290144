package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBolt_SaveLoad(t *testing.T) {
	b, err := NewBolt(t.TempDir())
	require.NoError(t, err)
	defer func() { require.NoError(t, b.Close()) }()

	ctx := context.Background()

	_, err = b.Load(ctx, "savedNews")
	assert.True(t, errors.Is(err, ErrNotFound), "expected not found, got %v", err)

	require.NoError(t, b.Save(ctx, "savedNews", `[{"web_url":"x"}]`))
	require.NoError(t, b.Save(ctx, "savedNews", `[]`))

	v, err := b.Load(ctx, "savedNews")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestBolt_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	b, err := NewBolt(dir)
	require.NoError(t, err)
	require.NoError(t, b.Save(ctx, "k", "v"))
	require.NoError(t, b.Close())

	b, err = NewBolt(dir)
	require.NoError(t, err)
	defer func() { require.NoError(t, b.Close()) }()

	v, err := b.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestMemory_SaveLoad(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Load(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Save(ctx, "k", "v1"))
	require.NoError(t, m.Save(ctx, "k", "v2"))

	v, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
}
