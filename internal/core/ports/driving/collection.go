package driving

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// CollectionService manages collections of documents.
//
// Any membership change invalidates the cached statistics of every
// document in the affected collection, since their IDF values depend on
// the membership.
type CollectionService interface {
	// Create adds a new, empty collection.
	Create(ctx context.Context, name, description string) (*domain.Collection, error)

	// Get retrieves a collection by ID or name.
	Get(ctx context.Context, ref string) (*domain.Collection, error)

	// List returns all collections.
	List(ctx context.Context) ([]domain.Collection, error)

	// Delete removes a collection.
	Delete(ctx context.Context, collectionID string) error

	// AddDocument adds a document to a collection.
	AddDocument(ctx context.Context, collectionID, documentID string) error

	// RemoveDocument removes a document from a collection.
	RemoveDocument(ctx context.Context, collectionID, documentID string) error
}
