package services

import (
	"context"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/termstat/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
	"github.com/custodia-labs/termstat/internal/normalisers"
	"github.com/custodia-labs/termstat/internal/normalisers/markdown"
	"github.com/custodia-labs/termstat/internal/normalisers/plaintext"
	"github.com/custodia-labs/termstat/internal/textsource"
	"github.com/custodia-labs/termstat/internal/tfidf"
)

// countingTexts wraps a TextSource and counts lookups. onGet, when set,
// runs before each lookup.
type countingTexts struct {
	mu    sync.Mutex
	calls int
	onGet func(doc *domain.Document)
	inner driven.TextSource
}

func (c *countingTexts) GetText(ctx context.Context, doc *domain.Document) (string, error) {
	c.mu.Lock()
	c.calls++
	hook := c.onGet
	c.mu.Unlock()
	if hook != nil {
		hook(doc)
	}
	return c.inner.GetText(ctx, doc)
}

// OnGet installs fn as the lookup hook.
func (c *countingTexts) OnGet(fn func(doc *domain.Document)) {
	c.mu.Lock()
	c.onGet = fn
	c.mu.Unlock()
}

func (c *countingTexts) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type fixture struct {
	docStore        *memory.DocumentStore
	collectionStore *memory.CollectionStore
	cache           *memory.StatisticsCache
	metricsStore    *memory.MetricsStore
	texts           *countingTexts

	statistics  *StatisticsService
	documents   *DocumentService
	collections *CollectionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	registry := normalisers.NewRegistry(plaintext.New(), markdown.New())
	f := &fixture{
		docStore:        memory.NewDocumentStore(),
		collectionStore: memory.NewCollectionStore(),
		cache:           memory.NewStatisticsCache(),
		metricsStore:    memory.NewMetricsStore(),
		texts:           &countingTexts{inner: textsource.New(registry)},
	}
	f.statistics = NewStatisticsService(
		tfidf.NewEngine(tfidf.DefaultConfig()),
		f.docStore, f.collectionStore, f.cache, f.texts, f.metricsStore,
	)
	f.documents = NewDocumentService(f.docStore, f.collectionStore, f.cache, f.texts, 0)
	f.collections = NewCollectionService(f.collectionStore, f.docStore, f.cache)
	return f
}

// addInline stores a document whose text is kept inline.
func (f *fixture) addInline(t *testing.T, id, text string) {
	t.Helper()
	require.NoError(t, f.docStore.SaveDocument(context.Background(), &domain.Document{
		ID:            id,
		Title:         id,
		Content:       text,
		ContentLength: utf8.RuneCountInString(text),
	}))
}

// collection creates a collection holding ids.
func (f *fixture) collection(t *testing.T, name string, ids ...string) *domain.Collection {
	t.Helper()
	ctx := context.Background()
	c, err := f.collections.Create(ctx, name, "")
	require.NoError(t, err)
	for _, id := range ids {
		require.NoError(t, f.collections.AddDocument(ctx, c.ID, id))
	}
	c, err = f.collections.Get(ctx, c.ID)
	require.NoError(t, err)
	return c
}

// pets adds the three-document pets corpus and returns its collection.
func (f *fixture) pets(t *testing.T) *domain.Collection {
	t.Helper()
	f.addInline(t, "cats-sat", "the cats sat")
	f.addInline(t, "dogs-ran", "the dogs ran")
	f.addInline(t, "cats-ran", "the cats ran")
	return f.collection(t, "pets", "cats-sat", "dogs-ran", "cats-ran")
}

func (f *fixture) isCached(t *testing.T, documentID string) bool {
	t.Helper()
	_, err := f.cache.Get(context.Background(), documentID)
	return err == nil
}
