package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute word statistics",
	Long: `Rank words by term frequency (TF), inverse document frequency (IDF) and
TF-IDF. Document rankings are ordered by IDF and cached; collection rankings
are ordered by TF-IDF.`,
}

var statsDocumentCmd = &cobra.Command{
	Use:   "document [collection] [doc-id]",
	Short: "Rank the words of a document within a collection",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatsDocument,
}

var statsCollectionCmd = &cobra.Command{
	Use:   "collection [collection]",
	Short: "Rank the words of a whole collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsCollection,
}

var statsWarmCmd = &cobra.Command{
	Use:   "warm [collection]",
	Short: "Precompute cached statistics for every member",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsWarm,
}

var statsInvalidateCmd = &cobra.Command{
	Use:   "invalidate [doc-id...]",
	Short: "Drop cached statistics of documents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStatsInvalidate,
}

// Flags for stats commands.
var (
	statsTop    int
	warmWorkers int
)

func init() {
	statsDocumentCmd.Flags().IntVarP(&statsTop, "top", "n", 0, "show only the first n words (0 = all)")
	statsCollectionCmd.Flags().IntVarP(&statsTop, "top", "n", 0, "show only the first n words (0 = all)")
	statsWarmCmd.Flags().IntVarP(&warmWorkers, "workers", "w", 0, "parallel computations (0 = configured)")

	statsCmd.AddCommand(statsDocumentCmd)
	statsCmd.AddCommand(statsCollectionCmd)
	statsCmd.AddCommand(statsWarmCmd)
	statsCmd.AddCommand(statsInvalidateCmd)
	rootCmd.AddCommand(statsCmd)
}

func runStatsDocument(cmd *cobra.Command, args []string) error {
	if statisticsService == nil {
		return errStatisticsServiceMissing
	}

	stats, err := statisticsService.DocumentStatistics(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to compute document statistics: %w", err)
	}
	stats.Words = topWords(stats.Words, statsTop)
	if outputJSON {
		return writeJSON(cmd, stats)
	}

	source := "computed"
	if stats.Cached {
		source = "cached"
	}
	cmd.Printf("Document %s in %s\n", stats.DocumentID, args[0])
	cmd.Println(muted(cmd, fmt.Sprintf("%d words, %d unique, %s %s",
		stats.WordCount, stats.UniqueWordCount, source, stats.ComputedAt.Format(timeFormat))))
	cmd.Println()
	printWords(cmd, stats.Words)
	return nil
}

func runStatsCollection(cmd *cobra.Command, args []string) error {
	if statisticsService == nil {
		return errStatisticsServiceMissing
	}

	stats, err := statisticsService.CollectionStatistics(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to compute collection statistics: %w", err)
	}
	stats.Words = topWords(stats.Words, statsTop)
	if outputJSON {
		return writeJSON(cmd, stats)
	}

	cmd.Printf("Collection %s\n", args[0])
	cmd.Println(muted(cmd, fmt.Sprintf("%d documents", stats.DocumentCount)))
	cmd.Println()
	printWords(cmd, stats.Words)
	return nil
}

func runStatsWarm(cmd *cobra.Command, args []string) error {
	if statisticsService == nil {
		return errStatisticsServiceMissing
	}

	workers := warmWorkers
	if workers <= 0 && settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			workers = settings.Warm.Workers
		}
	}

	result, err := statisticsService.Warm(cmd.Context(), args[0], workers)
	if err != nil {
		return fmt.Errorf("failed to warm cache: %w", err)
	}
	if outputJSON {
		failed := make(map[string]string, len(result.Failed))
		for id, ferr := range result.Failed {
			failed[id] = ferr.Error()
		}
		return writeJSON(cmd, map[string]any{
			"computed": result.Computed,
			"skipped":  result.Skipped,
			"failed":   failed,
		})
	}

	cmd.Printf("Computed %d, already cached %d, failed %d\n",
		result.Computed, result.Skipped, len(result.Failed))
	ids := make([]string, 0, len(result.Failed))
	for id := range result.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		cmd.Printf("  %s: %v\n", id, result.Failed[id])
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d document(s) failed", len(result.Failed))
	}
	return nil
}

func runStatsInvalidate(cmd *cobra.Command, args []string) error {
	if statisticsService == nil {
		return errStatisticsServiceMissing
	}

	for _, id := range args {
		if err := statisticsService.Invalidate(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to invalidate %s: %w", id, err)
		}
		cmd.Printf("Invalidated %s\n", id)
	}
	return nil
}

// topWords keeps the first n words for display. n <= 0 keeps all.
func topWords(words []domain.WordStatistic, n int) []domain.WordStatistic {
	if n > 0 && len(words) > n {
		return words[:n]
	}
	return words
}
