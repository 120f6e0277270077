// Command termstat computes TF, IDF and TF-IDF word statistics.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/termstat/internal/adapters/driven/cache/bbolt"
	"github.com/custodia-labs/termstat/internal/adapters/driven/config/file"
	"github.com/custodia-labs/termstat/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/termstat/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/termstat/internal/adapters/driven/watcher"
	"github.com/custodia-labs/termstat/internal/adapters/driving/cli"
	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
	"github.com/custodia-labs/termstat/internal/core/services"
	"github.com/custodia-labs/termstat/internal/logger"
	"github.com/custodia-labs/termstat/internal/normalisers"
	"github.com/custodia-labs/termstat/internal/normalisers/html"
	"github.com/custodia-labs/termstat/internal/normalisers/markdown"
	"github.com/custodia-labs/termstat/internal/normalisers/plaintext"
	"github.com/custodia-labs/termstat/internal/textsource"
	"github.com/custodia-labs/termstat/internal/tfidf"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	closers, err := wire()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i].Close(); cerr != nil {
				logger.Warn("closing: %v", cerr)
			}
		}
	}()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Describe(err))
		return 1
	}
	return 0
}

// homeDir returns the directory holding config and data.
// TERMSTAT_HOME overrides ~/.termstat.
func homeDir() (string, error) {
	if dir := os.Getenv("TERMSTAT_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".termstat"), nil
}

// wire builds the stores and services and hands them to the CLI. The
// returned closers are valid even when err is set.
func wire() ([]io.Closer, error) {
	var closers []io.Closer

	home, err := homeDir()
	if err != nil {
		return closers, err
	}
	dataDir := filepath.Join(home, "data")

	configStore, err := file.NewConfigStore(home)
	if err != nil {
		return closers, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return closers, fmt.Errorf("reading settings: %w", err)
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return closers, fmt.Errorf("opening store: %w", err)
	}
	closers = append(closers, store)

	var cache driven.StatisticsCache
	switch settings.Cache.Backend {
	case domain.CacheBackendBolt:
		boltCache, err := bbolt.NewCache(dataDir)
		if err != nil {
			return closers, fmt.Errorf("opening cache: %w", err)
		}
		closers = append(closers, boltCache)
		cache = boltCache
	case domain.CacheBackendMemory:
		cache = memory.NewStatisticsCache()
	default:
		cache = store.StatisticsCache()
	}
	logger.Debug("cache backend: %s", settings.Cache.Backend)

	texts := textsource.New(normalisers.NewRegistry(plaintext.New(), markdown.New(), html.New()))
	docStore := store.DocumentStore()
	collectionStore := store.CollectionStore()
	metricsStore := store.MetricsStore()

	statisticsService := services.NewStatisticsService(
		tfidf.NewEngine(tfidf.ConfigFromSettings(settings.Statistics)),
		docStore, collectionStore, cache, texts, metricsStore,
	)
	statisticsService.SetWarmRate(settings.Warm.RatePerSecond)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Document: services.NewDocumentService(
			docStore, collectionStore, cache, texts, settings.Statistics.MaxContentSize,
		),
		Collection: services.NewCollectionService(collectionStore, docStore, cache),
		Statistics: statisticsService,
		Settings:   settingsService,
		Metrics:    services.NewMetricsService(metricsStore),
		NewWatcher: func() (driven.FileWatcher, error) {
			w, err := watcher.New()
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	})
	return closers, nil
}
