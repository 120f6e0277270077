package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
	"github.com/custodia-labs/termstat/internal/core/ports/driving"
)

// Ensure CollectionService implements the interface.
var _ driving.CollectionService = (*CollectionService)(nil)

// CollectionService manages collections and their membership.
type CollectionService struct {
	collectionStore driven.CollectionStore
	docStore        driven.DocumentStore
	invalidate      invalidator
	now             func() time.Time
}

// NewCollectionService creates a new collection service.
func NewCollectionService(
	collectionStore driven.CollectionStore,
	docStore driven.DocumentStore,
	cache driven.StatisticsCache,
) *CollectionService {
	return &CollectionService{
		collectionStore: collectionStore,
		docStore:        docStore,
		invalidate:      invalidator{cache: cache, collections: collectionStore},
		now:             time.Now,
	}
}

// Create adds a new, empty collection. Names are unique.
func (s *CollectionService) Create(ctx context.Context, name, description string) (*domain.Collection, error) {
	if s.collectionStore == nil {
		return nil, domain.ErrNotImplemented
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.collectionStore.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: collection %q", domain.ErrAlreadyExists, name)
	}

	now := s.now()
	collection := &domain.Collection{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		DocumentIDs: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.collectionStore.Save(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// Get retrieves a collection by ID, falling back to its name.
func (s *CollectionService) Get(ctx context.Context, ref string) (*domain.Collection, error) {
	if s.collectionStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return resolveCollection(ctx, s.collectionStore, ref)
}

// List returns all collections.
func (s *CollectionService) List(ctx context.Context) ([]domain.Collection, error) {
	if s.collectionStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.collectionStore.List(ctx)
}

// Delete removes a collection and drops its members' cached statistics.
// The documents themselves are kept.
func (s *CollectionService) Delete(ctx context.Context, collectionID string) error {
	if s.collectionStore == nil {
		return domain.ErrNotImplemented
	}
	collection, err := resolveCollection(ctx, s.collectionStore, collectionID)
	if err != nil {
		return err
	}
	if err := s.invalidate.members(ctx, collection); err != nil {
		return err
	}
	return s.collectionStore.Delete(ctx, collection.ID)
}

// AddDocument adds a document to a collection. Adding a member again is a
// no-op.
func (s *CollectionService) AddDocument(ctx context.Context, collectionID, documentID string) error {
	if s.collectionStore == nil || s.docStore == nil {
		return domain.ErrNotImplemented
	}
	collection, err := resolveCollection(ctx, s.collectionStore, collectionID)
	if err != nil {
		return err
	}
	if _, err := s.docStore.GetDocument(ctx, documentID); err != nil {
		return fmt.Errorf("document %s: %w", documentID, err)
	}
	if collection.HasDocument(documentID) {
		return nil
	}

	collection.DocumentIDs = append(collection.DocumentIDs, documentID)
	collection.UpdatedAt = s.now()
	if err := s.collectionStore.Save(ctx, collection); err != nil {
		return err
	}
	return s.invalidate.members(ctx, collection)
}

// RemoveDocument removes a document from a collection.
// Returns domain.ErrDocumentNotInCorpus when it is not a member.
func (s *CollectionService) RemoveDocument(ctx context.Context, collectionID, documentID string) error {
	if s.collectionStore == nil {
		return domain.ErrNotImplemented
	}
	collection, err := resolveCollection(ctx, s.collectionStore, collectionID)
	if err != nil {
		return err
	}
	if !collection.HasDocument(documentID) {
		return fmt.Errorf("%w: %s", domain.ErrDocumentNotInCorpus, documentID)
	}

	collection.DocumentIDs = removeID(collection.DocumentIDs, documentID)
	collection.UpdatedAt = s.now()
	if err := s.collectionStore.Save(ctx, collection); err != nil {
		return err
	}
	if err := s.invalidate.documents(ctx, documentID); err != nil {
		return err
	}
	return s.invalidate.members(ctx, collection)
}

// resolveCollection looks a collection up by ID, then by name.
func resolveCollection(ctx context.Context, store driven.CollectionStore, ref string) (*domain.Collection, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, domain.ErrInvalidInput
	}
	collection, err := store.Get(ctx, ref)
	if err == nil {
		return collection, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	collection, err = store.GetByName(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("collection %q: %w", ref, err)
	}
	return collection, nil
}
