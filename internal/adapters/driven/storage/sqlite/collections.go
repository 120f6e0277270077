package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

// collectionStore implements driven.CollectionStore.
// Membership lives in collection_documents, ordered by position.
type collectionStore struct {
	store *Store
}

var _ driven.CollectionStore = (*collectionStore)(nil)

// Save stores or updates a collection and replaces its membership.
func (s *collectionStore) Save(ctx context.Context, collection *domain.Collection) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO collections (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			updated_at = excluded.updated_at
	`, collection.ID, collection.Name, collection.Description,
		formatTime(collection.CreatedAt), formatTime(collection.UpdatedAt))
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("saving collection: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM collection_documents WHERE collection_id = ?", collection.ID); err != nil {
		return fmt.Errorf("clearing membership: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO collection_documents (collection_id, document_id, position)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, docID := range collection.DocumentIDs {
		if _, err := stmt.ExecContext(ctx, collection.ID, docID, i); err != nil {
			return fmt.Errorf("saving membership of %s: %w", docID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Get retrieves a collection by ID.
func (s *collectionStore) Get(ctx context.Context, id string) (*domain.Collection, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM collections WHERE id = ?
	`, id)
	return s.load(ctx, row)
}

// GetByName retrieves a collection by name.
func (s *collectionStore) GetByName(ctx context.Context, name string) (*domain.Collection, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM collections WHERE name = ?
	`, name)
	return s.load(ctx, row)
}

// Delete removes a collection. Memberships are removed by cascade.
func (s *collectionStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	return nil
}

// List returns all collections ordered by name.
func (s *collectionStore) List(ctx context.Context) ([]domain.Collection, error) {
	return s.query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM collections ORDER BY name
	`)
}

// ListByDocument returns the collections containing a document.
func (s *collectionStore) ListByDocument(ctx context.Context, documentID string) ([]domain.Collection, error) {
	return s.query(ctx, `
		SELECT c.id, c.name, c.description, c.created_at, c.updated_at
		FROM collections c
		JOIN collection_documents cd ON cd.collection_id = c.id
		WHERE cd.document_id = ?
		ORDER BY c.name
	`, documentID)
}

func (s *collectionStore) query(ctx context.Context, query string, args ...any) ([]domain.Collection, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying collections: %w", err)
	}

	var collections []domain.Collection //nolint:prealloc // size unknown from query
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		collections = append(collections, *c)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("iterating collections: %w", err)
	}

	// Membership is loaded once the cursor is closed.
	result := make([]domain.Collection, 0, len(collections))
	for i := range collections {
		ids, err := s.documentIDs(ctx, collections[i].ID)
		if err != nil {
			return nil, err
		}
		collections[i].DocumentIDs = ids
		result = append(result, collections[i])
	}
	return result, nil
}

func (s *collectionStore) load(ctx context.Context, row *sql.Row) (*domain.Collection, error) {
	c, err := scanCollection(row)
	if err != nil {
		return nil, err
	}
	ids, err := s.documentIDs(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.DocumentIDs = ids
	return c, nil
}

// documentIDs returns the ordered members of a collection.
func (s *collectionStore) documentIDs(ctx context.Context, collectionID string) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT document_id FROM collection_documents
		WHERE collection_id = ?
		ORDER BY position
	`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("querying membership: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning membership: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating membership: %w", err)
	}
	return ids, nil
}

func scanCollection(row scanner) (*domain.Collection, error) {
	var (
		c                    domain.Collection
		createdAt, updatedAt sql.NullString
	)
	err := row.Scan(&c.ID, &c.Name, &c.Description, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning collection: %w", err)
	}
	c.CreatedAt = parseNullableTime(createdAt)
	c.UpdatedAt = parseNullableTime(updatedAt)
	return &c, nil
}
