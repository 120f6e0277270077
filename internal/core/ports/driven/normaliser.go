package driven

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// Normaliser extracts plain text from raw file content.
// Each normaliser handles specific MIME types (e.g., HTML, Markdown).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise returns the text content of a raw document.
	Normalise(ctx context.Context, raw *domain.RawDocument) (string, error)
}
