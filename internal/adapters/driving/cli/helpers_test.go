package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/termstat/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/termstat/internal/core/services"
	"github.com/custodia-labs/termstat/internal/normalisers"
	"github.com/custodia-labs/termstat/internal/normalisers/markdown"
	"github.com/custodia-labs/termstat/internal/normalisers/plaintext"
	"github.com/custodia-labs/termstat/internal/textsource"
	"github.com/custodia-labs/termstat/internal/tfidf"
)

type testServices struct {
	documents   *services.DocumentService
	collections *services.CollectionService
	statistics  *services.StatisticsService
	settings    *services.SettingsService
	metrics     *services.MetricsService
	cache       *memory.StatisticsCache
	dir         string
}

// setupTestServices wires real services over in-memory stores and injects
// them into the commands. Everything is reset when the test ends.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	docStore := memory.NewDocumentStore()
	collectionStore := memory.NewCollectionStore()
	cache := memory.NewStatisticsCache()
	metricsStore := memory.NewMetricsStore()
	texts := textsource.New(normalisers.NewRegistry(plaintext.New(), markdown.New()))

	ts := &testServices{
		documents:   services.NewDocumentService(docStore, collectionStore, cache, texts, 0),
		collections: services.NewCollectionService(collectionStore, docStore, cache),
		statistics: services.NewStatisticsService(
			tfidf.NewEngine(tfidf.DefaultConfig()),
			docStore, collectionStore, cache, texts, metricsStore,
		),
		settings: services.NewSettingsService(memory.NewConfigStore()),
		metrics:  services.NewMetricsService(metricsStore),
		cache:    cache,
		dir:      t.TempDir(),
	}

	SetServices(Services{
		Document:   ts.documents,
		Collection: ts.collections,
		Statistics: ts.statistics,
		Settings:   ts.settings,
		Metrics:    ts.metrics,
	})
	resetFlags()
	t.Cleanup(func() {
		SetServices(Services{})
		resetFlags()
	})
	return ts
}

// resetFlags restores flag variables, which cobra keeps between executions.
func resetFlags() {
	verbose = false
	outputJSON = false
	statsTop = 0
	warmWorkers = 0
	addFileOnly = false
	addCollection = ""
	collectionDescription = ""
	metricsLimit = 10
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	resetFlags()
	return buf.String(), err
}

// writeFile creates a text file in the test directory.
func (ts *testServices) writeFile(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(ts.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

// fruit adds three documents to a "fruit" collection and returns their IDs.
func (ts *testServices) fruit(t *testing.T) []string {
	t.Helper()
	ctx := context.Background()

	collection, err := ts.collections.Create(ctx, "fruit", "")
	require.NoError(t, err)

	texts := map[string]string{
		"one.txt":   "apple banana",
		"two.txt":   "apple cherry",
		"three.txt": "banana cherry",
	}
	var ids []string
	for _, name := range []string{"one.txt", "two.txt", "three.txt"} {
		doc, err := ts.documents.Add(ctx, ts.writeFile(t, name, texts[name]), true)
		require.NoError(t, err)
		require.NoError(t, ts.collections.AddDocument(ctx, collection.ID, doc.ID))
		ids = append(ids, doc.ID)
	}
	return ids
}

func (ts *testServices) isCached(documentID string) bool {
	stats, err := ts.cache.Get(context.Background(), documentID)
	return err == nil && !stats.IsEmpty()
}
