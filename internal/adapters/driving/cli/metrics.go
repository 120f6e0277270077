package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show statistics processing metrics",
	Long:  `Summarises recorded statistics computations and lists the most recent runs.`,
	Args:  cobra.NoArgs,
	RunE:  runMetrics,
}

var metricsLimit int

func init() {
	metricsCmd.Flags().IntVarP(&metricsLimit, "limit", "n", 10, "number of recent runs to list")
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	if metricsService == nil {
		return errMetricsServiceMissing
	}
	ctx := cmd.Context()

	summary, err := metricsService.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to summarise metrics: %w", err)
	}
	runs, err := metricsService.List(ctx, metricsLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if outputJSON {
		return writeJSON(cmd, summary)
	}

	cmd.Println("Metrics")
	cmd.Println("=======")
	cmd.Println()
	cmd.Printf("  Processed:       %d\n", summary.Processed)
	if summary.Processed == 0 {
		return nil
	}
	cmd.Printf("  Time (s):        min %.4f  avg %.4f  max %.4f\n",
		summary.MinSeconds, summary.AvgSeconds, summary.MaxSeconds)
	if summary.LatestSeconds != nil {
		cmd.Printf("  Latest (s):      %.4f\n", *summary.LatestSeconds)
	}
	cmd.Printf("  Content length:  avg %.0f  max %d\n", summary.AvgContentLength, summary.MaxContentLength)

	if len(runs) == 0 {
		return nil
	}
	cmd.Println()
	cmd.Println("Recent runs:")
	for i := range runs {
		target := runs[i].CollectionID
		if runs[i].DocumentID != "" {
			target = runs[i].DocumentID
		}
		cmd.Printf("  %s  %-22s %-9s %8.4fs  %s\n",
			runs[i].StartedAt.Format(timeFormat), runs[i].Operation, runs[i].Status,
			runs[i].Duration().Seconds(), target)
	}
	return nil
}
