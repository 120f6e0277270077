// Package bbolt implements driven.StatisticsCache using bbolt (embedded B+ tree).
// All vectors live in a single "statistics" bucket keyed by document ID, with
// JSON-serialized values. Writes are transactional, so a crash mid-write cannot
// corrupt previously committed entries.
package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

// FileName is the cache file created inside the data directory.
const FileName = "statistics.bolt"

var bucketStatistics = []byte("statistics")

// Ensure Cache implements the interface.
var _ driven.StatisticsCache = (*Cache)(nil)

// Cache implements driven.StatisticsCache backed by bbolt.
type Cache struct {
	db *bolt.DB
}

// entry is the stored form of domain.DocumentStats.
type entry struct {
	Vector          []domain.WordStatistic `json:"tf_vector"`
	CollectionID    string                 `json:"collection_id,omitempty"`
	WordCount       int                    `json:"word_count"`
	UniqueWordCount int                    `json:"unique_word_count"`
	ComputedAt      time.Time              `json:"stats_updated_at"`
}

// NewCache opens (or creates) the cache file in dataDir.
func NewCache(dataDir string) (*Cache, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	db, err := bolt.Open(filepath.Join(dataDir, FileName), 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketStatistics)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying bbolt database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Path returns the cache file path.
func (c *Cache) Path() string {
	return c.db.Path()
}

// Get returns the cached statistics for a document.
func (c *Cache) Get(ctx context.Context, documentID string) (*domain.DocumentStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketStatistics).Get([]byte(documentID))
		if v != nil {
			// Copy out: bbolt values are only valid inside the transaction.
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bbolt view: %w", err)
	}
	if data == nil {
		return nil, domain.ErrNotFound
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal statistics: %w", err)
	}
	return &domain.DocumentStats{
		Vector:          e.Vector,
		CollectionID:    e.CollectionID,
		WordCount:       e.WordCount,
		UniqueWordCount: e.UniqueWordCount,
		ComputedAt:      e.ComputedAt,
	}, nil
}

// Put stores statistics for a document.
func (c *Cache) Put(ctx context.Context, documentID string, stats *domain.DocumentStats) error {
	if stats == nil {
		return domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	vector := stats.Vector
	if vector == nil {
		vector = []domain.WordStatistic{}
	}
	data, err := json.Marshal(entry{
		Vector:          vector,
		CollectionID:    stats.CollectionID,
		WordCount:       stats.WordCount,
		UniqueWordCount: stats.UniqueWordCount,
		ComputedAt:      stats.ComputedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal statistics: %w", err)
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketStatistics).Put([]byte(documentID), data)
	})
}

// Invalidate removes the cached entry.
func (c *Cache) Invalidate(ctx context.Context, documentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketStatistics).Delete([]byte(documentID))
	})
}

// Len returns the number of cached entries.
func (c *Cache) Len() (int, error) {
	var n int
	err := c.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucketStatistics).Stats().KeyN
		return nil
	})
	return n, err
}
