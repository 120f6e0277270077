package driving

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// DocumentService manages the documents statistics are computed over.
type DocumentService interface {
	// Add registers the file at path as a document. When storeInline is
	// set and the text fits the configured size limit, the text is kept
	// in the store; otherwise it is read from the file on demand.
	Add(ctx context.Context, path string, storeInline bool) (*domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// List returns all documents.
	List(ctx context.Context) ([]domain.Document, error)

	// GetText returns the full text of a document.
	GetText(ctx context.Context, documentID string) (string, error)

	// UpdateContent replaces the inline text of a document and drops its
	// cached statistics.
	UpdateContent(ctx context.Context, documentID, content string) error

	// Delete removes a document from every collection and from the store.
	Delete(ctx context.Context, documentID string) error

	// InvalidateByURI drops cached statistics for the document backed by
	// the file at uri. Unknown URIs are ignored.
	InvalidateByURI(ctx context.Context, uri string) error
}
