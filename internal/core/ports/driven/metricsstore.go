package driven

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// MetricsStore records statistics runs.
type MetricsStore interface {
	// SaveRun stores or updates a run.
	SaveRun(ctx context.Context, run *domain.MetricRun) error

	// ListRuns returns the most recent runs first. limit <= 0 returns all.
	ListRuns(ctx context.Context, limit int) ([]domain.MetricRun, error)
}
