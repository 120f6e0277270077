package driven

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// CollectionStore persists collections and their membership.
type CollectionStore interface {
	// Save stores or updates a collection, replacing its membership.
	Save(ctx context.Context, collection *domain.Collection) error

	// Get retrieves a collection by ID.
	Get(ctx context.Context, id string) (*domain.Collection, error)

	// GetByName retrieves a collection by its unique name.
	GetByName(ctx context.Context, name string) (*domain.Collection, error)

	// Delete removes a collection. Member documents are kept.
	Delete(ctx context.Context, id string) error

	// List returns all collections.
	List(ctx context.Context) ([]domain.Collection, error)

	// ListByDocument returns the collections containing a document.
	ListByDocument(ctx context.Context, documentID string) ([]domain.Collection, error)
}
