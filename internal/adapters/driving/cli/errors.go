package cli

import (
	"errors"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

var (
	errDocumentServiceMissing   = errors.New("document service not configured")
	errCollectionServiceMissing = errors.New("collection service not configured")
	errStatisticsServiceMissing = errors.New("statistics service not configured")
	errSettingsServiceMissing   = errors.New("settings service not configured")
	errMetricsServiceMissing    = errors.New("metrics service not configured")
	errWatcherMissing           = errors.New("file watcher not configured")
)

// Describe turns an error returned by a command into a message for the
// terminal, with a hint for the statistics errors users can fix.
func Describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrDocumentNotInCorpus):
		return err.Error() + "\nHint: add it with 'termstat collection add <collection> <document>'."
	case errors.Is(err, domain.ErrEmptyCorpus):
		return err.Error() + "\nHint: the collection needs at least one document."
	case errors.Is(err, domain.ErrDecode):
		return err.Error() + "\nHint: only UTF-8 text files are supported."
	default:
		return err.Error()
	}
}
