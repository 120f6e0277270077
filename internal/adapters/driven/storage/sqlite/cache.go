package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

// statisticsCache implements driven.StatisticsCache on the columns
// tf_vector, stats_collection_id, word_count, unique_word_count and
// stats_updated_at of the documents table. The columns are written and
// cleared together.
type statisticsCache struct {
	store *Store
}

var _ driven.StatisticsCache = (*statisticsCache)(nil)

// Get returns the cached statistics for a document.
func (c *statisticsCache) Get(ctx context.Context, documentID string) (*domain.DocumentStats, error) {
	var (
		vector, collectionID sql.NullString
		wordCount, uniqueCnt sql.NullInt64
		updatedAt            sql.NullString
	)
	err := c.store.db.QueryRowContext(ctx, `
		SELECT tf_vector, stats_collection_id, word_count, unique_word_count, stats_updated_at
		FROM documents WHERE id = ?
	`, documentID).Scan(&vector, &collectionID, &wordCount, &uniqueCnt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying cached statistics: %w", err)
	}

	stats, err := decodeStats(vector, collectionID, wordCount, uniqueCnt, updatedAt)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, domain.ErrNotFound
	}
	return stats, nil
}

// Put stores statistics on the document row.
// Returns domain.ErrNotFound if the document does not exist.
func (c *statisticsCache) Put(ctx context.Context, documentID string, stats *domain.DocumentStats) error {
	if stats == nil {
		return domain.ErrInvalidInput
	}
	vector := stats.Vector
	if vector == nil {
		vector = []domain.WordStatistic{}
	}
	vectorJSON, err := json.Marshal(vector)
	if err != nil {
		return fmt.Errorf("marshalling statistics vector: %w", err)
	}

	res, err := c.store.db.ExecContext(ctx, `
		UPDATE documents SET
			tf_vector = ?,
			stats_collection_id = ?,
			word_count = ?,
			unique_word_count = ?,
			stats_updated_at = ?
		WHERE id = ?
	`, string(vectorJSON), nullString(stats.CollectionID), stats.WordCount, stats.UniqueWordCount,
		formatTime(stats.ComputedAt), documentID)
	if err != nil {
		return fmt.Errorf("storing cached statistics: %w", err)
	}
	return requireAffected(res)
}

// Invalidate clears the cached statistics columns.
func (c *statisticsCache) Invalidate(ctx context.Context, documentID string) error {
	_, err := c.store.db.ExecContext(ctx, `
		UPDATE documents SET
			tf_vector = NULL,
			stats_collection_id = NULL,
			word_count = NULL,
			unique_word_count = NULL,
			stats_updated_at = NULL
		WHERE id = ?
	`, documentID)
	if err != nil {
		return fmt.Errorf("invalidating cached statistics: %w", err)
	}
	return nil
}

// decodeStats rebuilds cached statistics from the nullable columns.
// Returns nil when no vector is stored.
func decodeStats(
	vector, collectionID sql.NullString,
	wordCount, uniqueCnt sql.NullInt64,
	updatedAt sql.NullString,
) (*domain.DocumentStats, error) {
	if !vector.Valid {
		return nil, nil
	}
	stats := &domain.DocumentStats{
		CollectionID:    collectionID.String,
		WordCount:       int(wordCount.Int64),
		UniqueWordCount: int(uniqueCnt.Int64),
		ComputedAt:      parseNullableTime(updatedAt),
	}
	if err := json.Unmarshal([]byte(vector.String), &stats.Vector); err != nil {
		return nil, fmt.Errorf("unmarshalling statistics vector: %w", err)
	}
	return stats, nil
}

// requireAffected maps an update that matched no rows to domain.ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
