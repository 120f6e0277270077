package driving

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// MetricsService reports on recorded statistics runs.
type MetricsService interface {
	// List returns the most recent runs first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]domain.MetricRun, error)

	// Summary aggregates completed runs.
	Summary(ctx context.Context) (*domain.MetricsSummary, error)
}
