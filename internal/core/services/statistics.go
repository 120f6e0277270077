package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
	"github.com/custodia-labs/termstat/internal/core/ports/driving"
	"github.com/custodia-labs/termstat/internal/logger"
	"github.com/custodia-labs/termstat/internal/tfidf"
)

// Ensure StatisticsService implements the interface.
var _ driving.StatisticsService = (*StatisticsService)(nil)

// StatisticsService computes word statistics for documents and collections
// and caches per-document results.
type StatisticsService struct {
	engine          *tfidf.Engine
	docStore        driven.DocumentStore
	collectionStore driven.CollectionStore
	cache           driven.StatisticsCache
	texts           driven.TextSource
	metrics         driven.MetricsStore
	limiter         *rate.Limiter
	now             func() time.Time
}

// NewStatisticsService creates a new statistics service.
// cache and metrics may be nil; results are then always computed and runs
// are not recorded.
func NewStatisticsService(
	engine *tfidf.Engine,
	docStore driven.DocumentStore,
	collectionStore driven.CollectionStore,
	cache driven.StatisticsCache,
	texts driven.TextSource,
	metrics driven.MetricsStore,
) *StatisticsService {
	return &StatisticsService{
		engine:          engine,
		docStore:        docStore,
		collectionStore: collectionStore,
		cache:           cache,
		texts:           texts,
		metrics:         metrics,
		now:             time.Now,
	}
}

// SetWarmRate paces warm-up computations to perSecond.
// Zero or less removes the limit.
func (s *StatisticsService) SetWarmRate(perSecond float64) {
	if perSecond <= 0 {
		s.limiter = nil
		return
	}
	s.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
}

// DocumentStatistics ranks the words of a document within a collection.
//
// Returns domain.ErrEmptyCorpus for an empty collection and
// domain.ErrDocumentNotInCorpus when the document is not a member.
func (s *StatisticsService) DocumentStatistics(
	ctx context.Context,
	collectionID, documentID string,
) (*domain.DocumentStatistics, error) {
	if !s.ready() {
		return nil, domain.ErrNotImplemented
	}
	collection, err := s.collection(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if !collection.HasDocument(documentID) {
		return nil, fmt.Errorf("%w: %s not in %s", domain.ErrDocumentNotInCorpus, documentID, collection.Name)
	}

	if stats := s.cached(ctx, collection.ID, documentID); stats != nil {
		logger.Debug("cache hit for %s in %s", documentID, collection.Name)
		return toDocumentStatistics(documentID, collection.ID, stats, true), nil
	}

	corpus, err := s.loadCorpus(ctx, collection)
	if err != nil {
		return nil, err
	}
	stats, err := s.computeDocument(ctx, collection.ID, documentID, corpus)
	if err != nil {
		return nil, err
	}
	s.store(ctx, collection.ID, corpus, map[string]*domain.DocumentStats{documentID: stats})
	return toDocumentStatistics(documentID, collection.ID, stats, false), nil
}

// CollectionStatistics ranks the words of a whole collection.
// Collection results are not cached.
func (s *StatisticsService) CollectionStatistics(
	ctx context.Context,
	collectionID string,
) (*domain.CollectionStatistics, error) {
	if !s.ready() {
		return nil, domain.ErrNotImplemented
	}
	collection, err := s.collection(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	corpus, err := s.loadCorpus(ctx, collection)
	if err != nil {
		return nil, err
	}

	defer logger.Timed("collection statistics " + collection.Name)()
	run := s.startRun(domain.OperationCollectionStatistics, "", collection.ID, corpus.totalLength())
	words, err := s.engine.CollectionStatistics(corpus.texts)
	s.finishRun(ctx, run, err)
	if err != nil {
		return nil, err
	}

	return &domain.CollectionStatistics{
		CollectionID:  collection.ID,
		DocumentCount: len(corpus.texts),
		Words:         words,
		ComputedAt:    run.FinishedAt,
	}, nil
}

// Invalidate drops the cached statistics of a document.
func (s *StatisticsService) Invalidate(ctx context.Context, documentID string) error {
	if s.cache == nil {
		return domain.ErrNotImplemented
	}
	return s.cache.Invalidate(ctx, documentID)
}

func (s *StatisticsService) ready() bool {
	return s.engine != nil && s.docStore != nil && s.collectionStore != nil && s.texts != nil
}

// collection resolves ref and rejects empty collections.
func (s *StatisticsService) collection(ctx context.Context, ref string) (*domain.Collection, error) {
	collection, err := resolveCollection(ctx, s.collectionStore, ref)
	if err != nil {
		return nil, err
	}
	if collection.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyCorpus, collection.Name)
	}
	return collection, nil
}

// cached returns the entry for documentID if it was computed against
// collectionID. Cache failures are treated as misses.
func (s *StatisticsService) cached(ctx context.Context, collectionID, documentID string) *domain.DocumentStats {
	if s.cache == nil {
		return nil
	}
	stats, err := s.cache.Get(ctx, documentID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("reading cached statistics for %s: %v", documentID, err)
		}
		return nil
	}
	if !stats.ComputedFor(collectionID) {
		return nil
	}
	return stats
}

// computeDocument runs the engine for one member of corpus.
func (s *StatisticsService) computeDocument(
	ctx context.Context,
	collectionID, documentID string,
	corpus *corpus,
) (*domain.DocumentStats, error) {
	text, ok := corpus.byID[documentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotInCorpus, documentID)
	}

	defer logger.Timed("document statistics " + documentID)()
	run := s.startRun(domain.OperationDocumentStatistics, documentID, collectionID, utf8.RuneCountInString(text))
	words, err := s.engine.DocumentStatistics(text, corpus.texts)
	s.finishRun(ctx, run, err)
	if err != nil {
		return nil, err
	}

	wordCount, uniqueCount := s.engine.Summarize(text)
	return &domain.DocumentStats{
		Vector:          words,
		CollectionID:    collectionID,
		WordCount:       wordCount,
		UniqueWordCount: uniqueCount,
		ComputedAt:      run.FinishedAt,
	}, nil
}

// store caches entries computed from c. It returns false when the entries
// were dropped because the corpus changed.
//
// The corpus is reloaded after the write. If it no longer matches c, a
// mutation raced with the computation and the entries are dropped again. A
// mutation that lands after the reload invalidates the entries itself.
func (s *StatisticsService) store(
	ctx context.Context,
	collectionID string,
	c *corpus,
	entries map[string]*domain.DocumentStats,
) bool {
	if s.cache == nil || len(entries) == 0 {
		return false
	}
	ctx = context.WithoutCancel(ctx)

	written := make([]string, 0, len(entries))
	for id, stats := range entries {
		if err := s.cache.Put(ctx, id, stats); err != nil {
			logger.Warn("caching statistics for %s: %v", id, err)
			continue
		}
		written = append(written, id)
	}
	if len(written) == 0 || s.unchanged(ctx, collectionID, c) {
		return true
	}

	logger.Debug("collection %s changed during computation, dropping %d entries", collectionID, len(written))
	for _, id := range written {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			logger.Warn("dropping stale statistics for %s: %v", id, err)
		}
	}
	return false
}

// unchanged reports whether the collection still has the members and texts
// c was loaded from. Lookup failures count as changes.
func (s *StatisticsService) unchanged(ctx context.Context, collectionID string, c *corpus) bool {
	collection, err := s.collectionStore.Get(ctx, collectionID)
	if err != nil {
		return false
	}
	latest, err := s.loadCorpus(ctx, collection)
	if err != nil {
		return false
	}
	return bytes.Equal(latest.fingerprint, c.fingerprint)
}

// corpus holds the texts of a collection's members in membership order.
// fingerprint is a digest of the member IDs and texts.
type corpus struct {
	texts       []string
	byID        map[string]string
	fingerprint []byte
}

func (c *corpus) totalLength() int {
	total := 0
	for _, text := range c.texts {
		total += utf8.RuneCountInString(text)
	}
	return total
}

// loadCorpus fetches the text of every member of collection.
func (s *StatisticsService) loadCorpus(ctx context.Context, collection *domain.Collection) (*corpus, error) {
	c := &corpus{
		texts: make([]string, 0, collection.Size()),
		byID:  make(map[string]string, collection.Size()),
	}
	h := sha256.New()
	for _, id := range collection.DocumentIDs {
		doc, err := s.docStore.GetDocument(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load document %s: %w", id, err)
		}
		text, err := s.texts.GetText(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("load text of %s: %w", id, err)
		}
		c.texts = append(c.texts, text)
		c.byID[id] = text
		fmt.Fprintf(h, "%d:%s%d:%s", len(id), id, len(text), text)
	}
	c.fingerprint = h.Sum(nil)
	return c, nil
}

func (s *StatisticsService) startRun(op domain.MetricOperation, documentID, collectionID string, length int) *domain.MetricRun {
	return &domain.MetricRun{
		ID:            uuid.New().String(),
		Operation:     op,
		DocumentID:    documentID,
		CollectionID:  collectionID,
		Status:        domain.MetricStatusPending,
		ContentLength: length,
		StartedAt:     s.now(),
	}
}

// finishRun stamps and records run. Recording failures are logged only.
func (s *StatisticsService) finishRun(ctx context.Context, run *domain.MetricRun, err error) {
	status := domain.MetricStatusCompleted
	if err != nil {
		status = domain.MetricStatusFailed
	}
	run.Finish(status, s.now())
	if s.metrics == nil {
		return
	}
	if err := s.metrics.SaveRun(ctx, run); err != nil {
		logger.Warn("recording metric run: %v", err)
	}
}

func toDocumentStatistics(documentID, collectionID string, stats *domain.DocumentStats, cached bool) *domain.DocumentStatistics {
	words := stats.Vector
	if words == nil {
		words = []domain.WordStatistic{}
	}
	return &domain.DocumentStatistics{
		DocumentID:      documentID,
		CollectionID:    collectionID,
		Words:           words,
		WordCount:       stats.WordCount,
		UniqueWordCount: stats.UniqueWordCount,
		Cached:          cached,
		ComputedAt:      stats.ComputedAt,
	}
}
