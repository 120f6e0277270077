package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

// Ensure MetricsStore implements the interface.
var _ driven.MetricsStore = (*MetricsStore)(nil)

// MetricsStore is an in-memory implementation of driven.MetricsStore.
type MetricsStore struct {
	mu   sync.RWMutex
	runs map[string]domain.MetricRun
}

// NewMetricsStore creates a new in-memory metrics store.
func NewMetricsStore() *MetricsStore {
	return &MetricsStore{
		runs: make(map[string]domain.MetricRun),
	}
}

// SaveRun stores or updates a run.
func (s *MetricsStore) SaveRun(_ context.Context, run *domain.MetricRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = *run
	return nil
}

// ListRuns returns the most recent runs first.
func (s *MetricsStore) ListRuns(_ context.Context, limit int) ([]domain.MetricRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.MetricRun, 0, len(s.runs))
	for id := range s.runs {
		result = append(result, s.runs[id])
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartedAt.Equal(result[j].StartedAt) {
			return result[i].StartedAt.After(result[j].StartedAt)
		}
		return result[i].ID < result[j].ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
