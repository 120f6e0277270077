package driven

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// StatisticsCache stores the statistics vector computed for a document.
//
// Entries are keyed by document ID only. Callers are responsible for
// invalidating an entry whenever the document text or the membership of
// any collection containing the document changes.
type StatisticsCache interface {
	// Get returns the cached statistics for a document.
	// Returns domain.ErrNotFound when nothing is cached.
	Get(ctx context.Context, documentID string) (*domain.DocumentStats, error)

	// Put stores statistics for a document, replacing any previous entry.
	Put(ctx context.Context, documentID string, stats *domain.DocumentStats) error

	// Invalidate removes the cached entry. Missing entries are not an error.
	Invalidate(ctx context.Context, documentID string) error
}
