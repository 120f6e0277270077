package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driving"
	"github.com/custodia-labs/termstat/internal/logger"
)

// errCorpusChanged marks warm-up results dropped because the collection
// changed while they were computed.
var errCorpusChanged = errors.New("collection changed during warm-up")

// Warm computes and caches statistics for every member of a collection that
// has no entry for it yet. The corpus is loaded once and shared read-only by
// the workers; each document is computed by exactly one worker.
func (s *StatisticsService) Warm(ctx context.Context, collectionID string, workers int) (*driving.WarmResult, error) {
	if !s.ready() || s.cache == nil {
		return nil, domain.ErrNotImplemented
	}
	if workers <= 0 {
		workers = domain.DefaultWarmWorkers
	}
	collection, err := s.collection(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	result := &driving.WarmResult{Failed: make(map[string]error)}
	var pending []string
	for _, id := range collection.DocumentIDs {
		if s.cached(ctx, collection.ID, id) != nil {
			result.Skipped++
			continue
		}
		pending = append(pending, id)
	}
	if len(pending) == 0 {
		return result, nil
	}

	corpus, err := s.loadCorpus(ctx, collection)
	if err != nil {
		return nil, err
	}
	if workers > len(pending) {
		workers = len(pending)
	}
	logger.Section("Warm " + collection.Name)
	logger.Info("computing %d document(s) with %d worker(s)", len(pending), workers)

	jobs := make(chan string)
	computed := make(map[string]*domain.DocumentStats, len(pending))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				stats, err := s.warmOne(ctx, collection.ID, id, corpus)
				mu.Lock()
				if err != nil {
					result.Failed[id] = err
				} else {
					computed[id] = stats
				}
				mu.Unlock()
			}
		}()
	}
	for _, id := range pending {
		jobs <- id
	}
	close(jobs)
	wg.Wait()

	if len(computed) > 0 && !s.store(ctx, collection.ID, corpus, computed) {
		for id := range computed {
			result.Failed[id] = errCorpusChanged
		}
		computed = nil
	}
	result.Computed = len(computed)

	if len(result.Failed) > 0 {
		logger.Warn("%d document(s) failed to warm", len(result.Failed))
	}
	return result, nil
}

func (s *StatisticsService) warmOne(
	ctx context.Context,
	collectionID, documentID string,
	corpus *corpus,
) (*domain.DocumentStats, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.computeDocument(ctx, collectionID, documentID, corpus)
}
