package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

func sampleStats() *domain.DocumentStats {
	return &domain.DocumentStats{
		Vector: []domain.WordStatistic{
			domain.NewWordStatistic("dogs", 1, 1.0986),
			domain.NewWordStatistic("cats", 2, 0.4055),
		},
		WordCount:       3,
		UniqueWordCount: 2,
		ComputedAt:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStatisticsCache_Miss(t *testing.T) {
	cache := NewStatisticsCache()

	_, err := cache.Get(context.Background(), "doc-1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatisticsCache_PutGetInvalidate(t *testing.T) {
	cache := NewStatisticsCache()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "doc-1", sampleStats()))
	assert.Equal(t, 1, cache.Len())

	got, err := cache.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, sampleStats(), got)

	require.NoError(t, cache.Invalidate(ctx, "doc-1"))
	require.NoError(t, cache.Invalidate(ctx, "doc-1"))
	_, err = cache.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatisticsCache_PutNil(t *testing.T) {
	err := NewStatisticsCache().Put(context.Background(), "doc-1", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStatisticsCache_EntriesAreCopied(t *testing.T) {
	cache := NewStatisticsCache()
	ctx := context.Background()
	stats := sampleStats()
	require.NoError(t, cache.Put(ctx, "doc-1", stats))

	stats.Vector[0].Word = "mutated"
	got, err := cache.Get(ctx, "doc-1")
	require.NoError(t, err)
	got.Vector[1].Word = "mutated"

	again, err := cache.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "dogs", again.Vector[0].Word)
	assert.Equal(t, "cats", again.Vector[1].Word)
}

func TestStatisticsCache_ConcurrentAccess(t *testing.T) {
	cache := NewStatisticsCache()
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = cache.Put(ctx, "doc", sampleStats())
		}()
		go func() {
			defer wg.Done()
			_, _ = cache.Get(ctx, "doc")
		}()
		go func() {
			defer wg.Done()
			_ = cache.Invalidate(ctx, "doc")
		}()
	}
	wg.Wait()
}
