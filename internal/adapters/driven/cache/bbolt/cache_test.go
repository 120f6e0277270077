package bbolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

func newTestCache(t *testing.T) (*Cache, string) {
	t.Helper()
	dir := t.TempDir()
	c, err := NewCache(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, dir
}

func sampleStats() *domain.DocumentStats {
	return &domain.DocumentStats{
		Vector: []domain.WordStatistic{
			domain.NewWordStatistic("dogs", 1, 1.0986122886681098),
			domain.NewWordStatistic("cats", 2, 0.4054651081081644),
		},
		CollectionID:    "col-1",
		WordCount:       3,
		UniqueWordCount: 2,
		ComputedAt:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewCache_CreatesFile(t *testing.T) {
	c, dir := newTestCache(t)

	assert.Equal(t, filepath.Join(dir, FileName), c.Path())
	assert.FileExists(t, c.Path())
}

func TestCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	_, err := c.Get(context.Background(), "doc-1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "doc-1", sampleStats()))

	got, err := c.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, sampleStats().Vector, got.Vector)
	assert.Equal(t, "col-1", got.CollectionID)
	assert.Equal(t, 3, got.WordCount)
	assert.Equal(t, 2, got.UniqueWordCount)
	assert.True(t, sampleStats().ComputedAt.Equal(got.ComputedAt))

	n, err := c.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCache_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	c, err := NewCache(dir)
	require.NoError(t, err)
	require.NoError(t, c.Put(ctx, "doc-1", sampleStats()))
	require.NoError(t, c.Close())

	c, err = NewCache(dir)
	require.NoError(t, err)
	defer c.Close()

	got, err := c.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Len(t, got.Vector, 2)
}

func TestCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	require.NoError(t, c.Put(ctx, "doc-1", sampleStats()))

	require.NoError(t, c.Invalidate(ctx, "doc-1"))
	require.NoError(t, c.Invalidate(ctx, "never-cached"))

	_, err := c.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCache_EmptyVector(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "doc-1", &domain.DocumentStats{}))

	got, err := c.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.NotNil(t, got.Vector)
	assert.Empty(t, got.Vector)
}

func TestCache_PutNil(t *testing.T) {
	c, _ := newTestCache(t)

	assert.ErrorIs(t, c.Put(context.Background(), "doc-1", nil), domain.ErrInvalidInput)
}

func TestCache_CancelledContext(t *testing.T) {
	c, _ := newTestCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, c.Put(ctx, "doc-1", sampleStats()), context.Canceled)
	assert.ErrorIs(t, c.Invalidate(ctx, "doc-1"), context.Canceled)
}
