package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// SaveDocument stores or updates a document.
func (s *DocumentStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = cloneDocument(*doc)
	return nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc = cloneDocument(doc)
	return &doc, nil
}

// GetDocumentByURI retrieves the document backed by the file at uri.
func (s *DocumentStore) GetDocumentByURI(_ context.Context, uri string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id := range s.documents {
		if s.documents[id].URI == uri {
			doc := cloneDocument(s.documents[id])
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// DeleteDocument removes a document.
func (s *DocumentStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	return nil
}

// ListDocuments returns all documents ordered by creation time.
func (s *DocumentStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Document, 0, len(s.documents))
	for id := range s.documents {
		result = append(result, cloneDocument(s.documents[id]))
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// cloneDocument copies the cached statistics so callers cannot alias stored state.
func cloneDocument(doc domain.Document) domain.Document {
	doc.Stats = cloneStats(doc.Stats)
	return doc
}

func cloneStats(stats *domain.DocumentStats) *domain.DocumentStats {
	if stats == nil {
		return nil
	}
	c := *stats
	if stats.Vector != nil {
		c.Vector = append([]domain.WordStatistic(nil), stats.Vector...)
	}
	return &c
}
