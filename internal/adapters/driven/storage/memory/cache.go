package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

// Ensure StatisticsCache implements the interface.
var _ driven.StatisticsCache = (*StatisticsCache)(nil)

// StatisticsCache keeps statistics vectors for the lifetime of the process.
type StatisticsCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.DocumentStats
}

// NewStatisticsCache creates an empty in-memory cache.
func NewStatisticsCache() *StatisticsCache {
	return &StatisticsCache{
		entries: make(map[string]*domain.DocumentStats),
	}
}

// Get returns the cached statistics for a document.
func (c *StatisticsCache) Get(_ context.Context, documentID string) (*domain.DocumentStats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stats, ok := c.entries[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneStats(stats), nil
}

// Put stores statistics for a document.
func (c *StatisticsCache) Put(_ context.Context, documentID string, stats *domain.DocumentStats) error {
	if stats == nil {
		return domain.ErrInvalidInput
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[documentID] = cloneStats(stats)
	return nil
}

// Invalidate removes the cached entry.
func (c *StatisticsCache) Invalidate(_ context.Context, documentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, documentID)
	return nil
}

// Len returns the number of cached entries.
func (c *StatisticsCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
