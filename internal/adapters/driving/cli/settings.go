package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change tokenization, ranking, cache and warm-up settings.

Settings are stored in ~/.termstat/config.toml.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a single setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting. Lists such as statistics.stop_words are comma-separated;
an empty value clears them.

Keys:
  statistics.min_token_length   minimum token length in characters (>= 1)
  statistics.top_n              words kept in document rankings (0 = all)
  statistics.collection_top_n   words kept in collection rankings (0 = all)
  statistics.stop_words         words dropped by the tokenizer
  statistics.max_content_size   largest text, in characters, stored inline
  cache.backend                 sqlite, bbolt or memory
  warm.workers                  parallel warm-up computations
  warm.rate_per_second          warm-up pacing (0 = unlimited)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingRow is one key and its display value.
type settingRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func settingRows(s *domain.AppSettings) []settingRow {
	return []settingRow{
		{"statistics.min_token_length", strconv.Itoa(s.Statistics.MinTokenLength)},
		{"statistics.top_n", strconv.Itoa(s.Statistics.TopN)},
		{"statistics.collection_top_n", strconv.Itoa(s.Statistics.CollectionTopN)},
		{"statistics.stop_words", strings.Join(s.Statistics.StopWords, ",")},
		{"statistics.max_content_size", strconv.Itoa(s.Statistics.MaxContentSize)},
		{"cache.backend", s.Cache.Backend.String()},
		{"warm.workers", strconv.Itoa(s.Warm.Workers)},
		{"warm.rate_per_second", strconv.FormatFloat(s.Warm.RatePerSecond, 'g', -1, 64)},
	}
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	rows := settingRows(settings)
	if outputJSON {
		return writeJSON(cmd, rows)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	for _, row := range rows {
		value := row.Value
		if value == "" {
			value = muted(cmd, "(none)")
		}
		cmd.Printf("  %-30s %s\n", row.Key, value)
	}
	cmd.Println()
	cmd.Printf("  Cache: %s\n", settings.Cache.Backend.Description())
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	for _, row := range settingRows(settings) {
		if row.Key == args[0] {
			cmd.Println(row.Value)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, args[0])
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s\n", args[0])
	if args[0] == "cache.backend" {
		cmd.Println("The new cache backend is used from the next run.")
	}
	return nil
}
