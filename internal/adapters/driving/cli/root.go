// Package cli implements the termstat command line with cobra.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/termstat/internal/core/ports/driven"
	"github.com/custodia-labs/termstat/internal/core/ports/driving"
	"github.com/custodia-labs/termstat/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services used by the commands. Nil services make their commands fail
// with a "not configured" error.
var (
	documentService   driving.DocumentService
	collectionService driving.CollectionService
	statisticsService driving.StatisticsService
	settingsService   driving.SettingsService
	metricsService    driving.MetricsService
	newWatcher        func() (driven.FileWatcher, error)
)

// Global flags.
var (
	verbose    bool
	outputJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "termstat",
	Short: "Word statistics for documents and collections",
	Long: `termstat ranks the words of a document or a collection of documents by
term frequency (TF), inverse document frequency (IDF) and TF-IDF.

Add documents, group them into collections, then ask for statistics:

  termstat document add notes/*.md --collection notes
  termstat stats document notes <document-id>
  termstat stats collection notes`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON")
}

// Services holds the driving ports the commands call into.
type Services struct {
	Document   driving.DocumentService
	Collection driving.CollectionService
	Statistics driving.StatisticsService
	Settings   driving.SettingsService
	Metrics    driving.MetricsService

	// NewWatcher creates the file watcher used by the watch command.
	NewWatcher func() (driven.FileWatcher, error)
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	documentService = s.Document
	collectionService = s.Collection
	statisticsService = s.Statistics
	settingsService = s.Settings
	metricsService = s.Metrics
	newWatcher = s.NewWatcher
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
