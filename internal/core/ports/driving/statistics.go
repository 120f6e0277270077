package driving

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// StatisticsService computes TF, IDF and TF-IDF statistics.
type StatisticsService interface {
	// DocumentStatistics ranks the words of a document within a collection.
	// Results are served from the cache when available.
	DocumentStatistics(ctx context.Context, collectionID, documentID string) (*domain.DocumentStatistics, error)

	// CollectionStatistics ranks the words of a whole collection.
	CollectionStatistics(ctx context.Context, collectionID string) (*domain.CollectionStatistics, error)

	// Warm computes and caches statistics for every member of a collection
	// that has no cached entry, using up to workers goroutines.
	Warm(ctx context.Context, collectionID string, workers int) (*WarmResult, error)

	// Invalidate drops the cached statistics of a document.
	Invalidate(ctx context.Context, documentID string) error
}

// WarmResult summarises a warm-up run.
type WarmResult struct {
	// Computed is the number of documents whose statistics were computed.
	Computed int

	// Skipped is the number of documents that were already cached.
	Skipped int

	// Failed maps document IDs to the error that stopped them.
	Failed map[string]error
}
