package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/termstat/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Invalidate cached statistics when files change",
	Long: `Watches a directory recursively. When a file that was added as a document
changes, the cached statistics of that document and of every document
sharing a collection with it are dropped.

Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errDocumentServiceMissing
	}
	if newWatcher == nil {
		return errWatcherMissing
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := newWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	onChange := func(path string) {
		if err := documentService.InvalidateByURI(context.WithoutCancel(ctx), path); err != nil {
			logger.Warn("invalidating %s: %v", path, err)
			return
		}
		logger.Debug("changed: %s", path)
	}
	if err := w.Watch(args[0], onChange); err != nil {
		_ = w.Stop()
		return fmt.Errorf("failed to watch %s: %w", args[0], err)
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	<-ctx.Done()

	if err := w.Stop(); err != nil {
		return fmt.Errorf("failed to stop watcher: %w", err)
	}
	cmd.Println("Stopped.")
	return nil
}
