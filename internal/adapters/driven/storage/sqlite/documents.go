package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

const documentColumns = `id, title, uri, mime_type, content, content_length,
	tf_vector, stats_collection_id, word_count, unique_word_count, stats_updated_at,
	created_at, updated_at`

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// SaveDocument stores or updates a document.
// Cached statistics columns are owned by the statistics cache and are
// left untouched.
func (s *documentStore) SaveDocument(ctx context.Context, doc *domain.Document) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, uri, mime_type, content, content_length, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			uri = excluded.uri,
			mime_type = excluded.mime_type,
			content = excluded.content,
			content_length = excluded.content_length,
			updated_at = excluded.updated_at
	`, doc.ID, doc.Title, doc.URI, doc.MIMEType, nullString(doc.Content), doc.ContentLength,
		formatTime(doc.CreatedAt), formatTime(doc.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// GetDocument retrieves a document by ID.
func (s *documentStore) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE id = ?", id)
	return scanDocument(row)
}

// GetDocumentByURI retrieves the document backed by the file at uri.
func (s *documentStore) GetDocumentByURI(ctx context.Context, uri string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE uri = ? ORDER BY created_at LIMIT 1", uri)
	return scanDocument(row)
}

// DeleteDocument removes a document. Memberships are removed by cascade.
func (s *documentStore) DeleteDocument(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// ListDocuments returns all documents ordered by creation time.
func (s *documentStore) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+documentColumns+" FROM documents ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

// scanDocument scans a document row, including any cached statistics.
func scanDocument(row scanner) (*domain.Document, error) {
	var (
		doc                  domain.Document
		content              sql.NullString
		vector, statsCol     sql.NullString
		wordCount, uniqueCnt sql.NullInt64
		statsUpdatedAt       sql.NullString
		createdAt, updatedAt sql.NullString
	)

	err := row.Scan(&doc.ID, &doc.Title, &doc.URI, &doc.MIMEType, &content, &doc.ContentLength,
		&vector, &statsCol, &wordCount, &uniqueCnt, &statsUpdatedAt, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	doc.Content = content.String
	doc.CreatedAt = parseNullableTime(createdAt)
	doc.UpdatedAt = parseNullableTime(updatedAt)

	stats, err := decodeStats(vector, statsCol, wordCount, uniqueCnt, statsUpdatedAt)
	if err != nil {
		return nil, err
	}
	doc.Stats = stats
	return &doc, nil
}
