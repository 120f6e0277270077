package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

// metricsStore implements driven.MetricsStore.
type metricsStore struct {
	store *Store
}

var _ driven.MetricsStore = (*metricsStore)(nil)

// SaveRun stores or updates a run.
func (s *metricsStore) SaveRun(ctx context.Context, run *domain.MetricRun) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO metrics (id, operation, document_id, collection_id, status, content_length, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			content_length = excluded.content_length,
			finished_at = excluded.finished_at
	`, run.ID, string(run.Operation), nullString(run.DocumentID), nullString(run.CollectionID),
		string(run.Status), run.ContentLength, formatTime(run.StartedAt), formatNullableTime(run.FinishedAt))
	if err != nil {
		return fmt.Errorf("saving metric run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs first.
func (s *metricsStore) ListRuns(ctx context.Context, limit int) ([]domain.MetricRun, error) {
	query := `
		SELECT id, operation, document_id, collection_id, status, content_length, started_at, finished_at
		FROM metrics ORDER BY started_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying metric runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.MetricRun{}
	for rows.Next() {
		var (
			run                    domain.MetricRun
			operation, status      string
			documentID, collection sql.NullString
			startedAt, finishedAt  sql.NullString
		)
		if err := rows.Scan(&run.ID, &operation, &documentID, &collection, &status,
			&run.ContentLength, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("scanning metric run: %w", err)
		}
		run.Operation = domain.MetricOperation(operation)
		run.Status = domain.MetricStatus(status)
		run.DocumentID = documentID.String
		run.CollectionID = collection.String
		run.StartedAt = parseNullableTime(startedAt)
		run.FinishedAt = parseNullableTime(finishedAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating metric runs: %w", err)
	}
	return runs, nil
}
