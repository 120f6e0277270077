package driven

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// TextSource resolves the full text of a document.
type TextSource interface {
	// GetText returns the document text, from inline content when present
	// or from the file at the document URI otherwise.
	// Returns domain.ErrDecode when the content is not valid text.
	GetText(ctx context.Context, doc *domain.Document) (string, error)
}
