package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
	"github.com/custodia-labs/termstat/internal/logger"
)

// invalidator drops cached statistics whose corpus has changed.
//
// A cached vector carries IDF values of one collection, so any change to a
// member's text or to the membership stales every member of that collection.
type invalidator struct {
	cache       driven.StatisticsCache
	collections driven.CollectionStore
}

// documents drops the entries of ids, continuing past failures.
func (inv invalidator) documents(ctx context.Context, ids ...string) error {
	if inv.cache == nil {
		return nil
	}
	var errs []error
	for _, id := range ids {
		if err := inv.cache.Invalidate(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("invalidate %s: %w", id, err))
		}
	}
	if len(errs) > 0 {
		logger.Warn("cache invalidation failed for %d document(s)", len(errs))
	}
	return errors.Join(errs...)
}

// members drops the entries of every member of collection.
func (inv invalidator) members(ctx context.Context, collection *domain.Collection) error {
	return inv.documents(ctx, collection.DocumentIDs...)
}

// related drops the entry of documentID and of every document sharing a
// collection with it.
func (inv invalidator) related(ctx context.Context, documentID string) error {
	if inv.cache == nil {
		return nil
	}
	ids := []string{documentID}
	if inv.collections != nil {
		collections, err := inv.collections.ListByDocument(ctx, documentID)
		if err != nil {
			return fmt.Errorf("list collections of %s: %w", documentID, err)
		}
		seen := map[string]bool{documentID: true}
		for i := range collections {
			for _, id := range collections[i].DocumentIDs {
				if !seen[id] {
					seen[id] = true
					ids = append(ids, id)
				}
			}
		}
	}
	logger.Debug("invalidating %d cached vector(s) related to %s", len(ids), documentID)
	return inv.documents(ctx, ids...)
}
