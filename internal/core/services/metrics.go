package services

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
	"github.com/custodia-labs/termstat/internal/core/ports/driving"
)

// Ensure MetricsService implements the interface.
var _ driving.MetricsService = (*MetricsService)(nil)

// MetricsService reports on recorded statistics runs.
type MetricsService struct {
	store driven.MetricsStore
}

// NewMetricsService creates a new metrics service.
func NewMetricsService(store driven.MetricsStore) *MetricsService {
	return &MetricsService{store: store}
}

// List returns the most recent runs first.
func (s *MetricsService) List(ctx context.Context, limit int) ([]domain.MetricRun, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.ListRuns(ctx, limit)
}

// Summary aggregates every completed run.
func (s *MetricsService) Summary(ctx context.Context) (*domain.MetricsSummary, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	runs, err := s.store.ListRuns(ctx, 0)
	if err != nil {
		return nil, err
	}
	summary := domain.SummarizeRuns(runs)
	return &summary, nil
}
