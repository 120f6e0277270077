// Package textsource resolves the full text of a document, either from its
// inline content or from the file it was added from.
package textsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.TextSource = (*Source)(nil)

// Source implements driven.TextSource.
type Source struct {
	registry driven.NormaliserRegistry
}

// New creates a text source that extracts file text with registry.
func New(registry driven.NormaliserRegistry) *Source {
	return &Source{registry: registry}
}

// GetText returns the inline content when present. Otherwise the file at
// doc.URI is read, checked to be UTF-8 and passed through the normaliser
// selected by its MIME type.
func (s *Source) GetText(ctx context.Context, doc *domain.Document) (string, error) {
	if doc == nil {
		return "", domain.ErrInvalidInput
	}
	if doc.HasInlineContent() {
		return doc.Content, nil
	}
	if doc.URI == "" {
		// Neither inline text nor a file: the document is empty.
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(doc.URI)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("reading %s: %w", doc.URI, domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", doc.URI, err)
	}

	return s.Decode(ctx, doc.URI, doc.MIMEType, data)
}

// Decode validates raw file bytes and extracts their text.
// Returns domain.ErrDecode when data is not valid UTF-8.
func (s *Source) Decode(ctx context.Context, uri, mimeType string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", uri, domain.ErrDecode)
	}
	if mimeType == "" {
		mimeType = domain.DetectMIMEType(uri)
	}

	text, err := s.registry.Normalise(ctx, &domain.RawDocument{
		URI:      uri,
		MIMEType: mimeType,
		Content:  data,
	})
	if err != nil {
		return "", fmt.Errorf("normalising %s: %w", uri, err)
	}
	return text, nil
}
