package driven

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// DocumentStore persists document metadata.
// Backed by SQLite for metadata storage.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetDocumentByURI retrieves the document backed by the file at uri.
	GetDocumentByURI(ctx context.Context, uri string) (*domain.Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments returns all documents ordered by creation time.
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}
