package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

// Ensure CollectionStore implements the interface.
var _ driven.CollectionStore = (*CollectionStore)(nil)

// CollectionStore is an in-memory implementation of driven.CollectionStore.
type CollectionStore struct {
	mu          sync.RWMutex
	collections map[string]domain.Collection
}

// NewCollectionStore creates a new in-memory collection store.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{
		collections: make(map[string]domain.Collection),
	}
}

// Save stores or updates a collection.
// Returns domain.ErrAlreadyExists if another collection has the same name.
func (s *CollectionStore) Save(_ context.Context, collection *domain.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.collections {
		if id != collection.ID && existing.Name == collection.Name {
			return domain.ErrAlreadyExists
		}
	}
	s.collections[collection.ID] = cloneCollection(*collection)
	return nil
}

// Get retrieves a collection by ID.
func (s *CollectionStore) Get(_ context.Context, id string) (*domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.collections[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c = cloneCollection(c)
	return &c, nil
}

// GetByName retrieves a collection by name.
func (s *CollectionStore) GetByName(_ context.Context, name string) (*domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id := range s.collections {
		if s.collections[id].Name == name {
			c := cloneCollection(s.collections[id])
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes a collection.
func (s *CollectionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, id)
	return nil
}

// List returns all collections ordered by name.
func (s *CollectionStore) List(_ context.Context) ([]domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(domain.Collection) bool { return true }), nil
}

// ListByDocument returns the collections containing a document.
func (s *CollectionStore) ListByDocument(_ context.Context, documentID string) ([]domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(c domain.Collection) bool { return c.HasDocument(documentID) }), nil
}

// filter returns matching collections sorted by name (caller must hold lock).
func (s *CollectionStore) filter(match func(domain.Collection) bool) []domain.Collection {
	result := make([]domain.Collection, 0, len(s.collections))
	for id := range s.collections {
		if match(s.collections[id]) {
			result = append(result, cloneCollection(s.collections[id]))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func cloneCollection(c domain.Collection) domain.Collection {
	c.DocumentIDs = append([]string(nil), c.DocumentIDs...)
	return c
}
