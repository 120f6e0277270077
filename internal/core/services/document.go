package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
	"github.com/custodia-labs/termstat/internal/core/ports/driving"
	"github.com/custodia-labs/termstat/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages documents and keeps their cached statistics
// in step with their text.
type DocumentService struct {
	docStore        driven.DocumentStore
	collectionStore driven.CollectionStore
	texts           driven.TextSource
	invalidate      invalidator
	maxContentSize  int
	now             func() time.Time
}

// NewDocumentService creates a new document service.
// maxContentSize is the largest text, in characters, kept inline;
// zero or less uses the default.
func NewDocumentService(
	docStore driven.DocumentStore,
	collectionStore driven.CollectionStore,
	cache driven.StatisticsCache,
	texts driven.TextSource,
	maxContentSize int,
) *DocumentService {
	if maxContentSize <= 0 {
		maxContentSize = domain.DefaultMaxContentSize
	}
	return &DocumentService{
		docStore:        docStore,
		collectionStore: collectionStore,
		texts:           texts,
		invalidate:      invalidator{cache: cache, collections: collectionStore},
		maxContentSize:  maxContentSize,
		now:             time.Now,
	}
}

// Add registers the file at path as a document.
func (s *DocumentService) Add(ctx context.Context, path string, storeInline bool) (*domain.Document, error) {
	if s.docStore == nil || s.texts == nil {
		return nil, domain.ErrNotImplemented
	}
	if strings.TrimSpace(path) == "" {
		return nil, domain.ErrInvalidInput
	}

	uri, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if _, err := s.docStore.GetDocumentByURI(ctx, uri); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyExists, uri)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	doc := &domain.Document{
		ID:        uuid.New().String(),
		Title:     filepath.Base(uri),
		URI:       uri,
		MIMEType:  domain.DetectMIMEType(uri),
		CreatedAt: now,
		UpdatedAt: now,
	}

	text, err := s.texts.GetText(ctx, doc)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyContent, uri)
	}

	doc.ContentLength = utf8.RuneCountInString(text)
	if storeInline && doc.ContentLength <= s.maxContentSize {
		doc.Content = text
	} else if storeInline {
		logger.Info("%s exceeds %d characters, text will be read from the file",
			doc.Title, s.maxContentSize)
	}

	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	logger.Debug("added document %s (%s, %d characters)", doc.ID, doc.MIMEType, doc.ContentLength)
	return doc, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.docStore.GetDocument(ctx, documentID)
}

// List returns all documents.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.docStore.ListDocuments(ctx)
}

// GetText returns the full text of a document.
func (s *DocumentService) GetText(ctx context.Context, documentID string) (string, error) {
	if s.docStore == nil || s.texts == nil {
		return "", domain.ErrNotImplemented
	}
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return "", err
	}
	return s.texts.GetText(ctx, doc)
}

// UpdateContent replaces the inline text of a document and drops the cached
// statistics of every document sharing a collection with it.
func (s *DocumentService) UpdateContent(ctx context.Context, documentID, content string) error {
	if s.docStore == nil {
		return domain.ErrNotImplemented
	}
	if strings.TrimSpace(content) == "" {
		return domain.ErrEmptyContent
	}
	length := utf8.RuneCountInString(content)
	if length > s.maxContentSize {
		return fmt.Errorf("%w: content exceeds %d characters", domain.ErrInvalidInput, s.maxContentSize)
	}

	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return err
	}
	doc.Content = content
	doc.ContentLength = length
	doc.Stats = nil
	doc.UpdatedAt = s.now()

	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return s.invalidate.related(ctx, documentID)
}

// Delete removes a document from every collection and from the store.
// The remaining members of those collections lose their cached statistics.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	if s.docStore == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.docStore.GetDocument(ctx, documentID); err != nil {
		return err
	}

	if err := s.invalidate.related(ctx, documentID); err != nil {
		return err
	}
	if s.collectionStore != nil {
		collections, err := s.collectionStore.ListByDocument(ctx, documentID)
		if err != nil {
			return fmt.Errorf("list collections: %w", err)
		}
		for i := range collections {
			c := &collections[i]
			c.DocumentIDs = removeID(c.DocumentIDs, documentID)
			c.UpdatedAt = s.now()
			if err := s.collectionStore.Save(ctx, c); err != nil {
				return fmt.Errorf("update collection %s: %w", c.Name, err)
			}
		}
	}
	return s.docStore.DeleteDocument(ctx, documentID)
}

// InvalidateByURI drops cached statistics after the file at uri changed.
// Documents with inline content do not depend on the file and are left
// alone, as are URIs no document was added from.
func (s *DocumentService) InvalidateByURI(ctx context.Context, uri string) error {
	if s.docStore == nil {
		return domain.ErrNotImplemented
	}
	doc, err := s.docStore.GetDocumentByURI(ctx, uri)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if doc.HasInlineContent() {
		return nil
	}
	logger.Debug("%s changed, invalidating %s", uri, doc.ID)
	return s.invalidate.related(ctx, doc.ID)
}

func removeID(ids []string, id string) []string {
	result := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			result = append(result, existing)
		}
	}
	return result
}
