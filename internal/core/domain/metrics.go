package domain

import "time"

// MetricStatus is the outcome of a statistics computation.
type MetricStatus string

// Metric statuses.
const (
	MetricStatusPending   MetricStatus = "pending"
	MetricStatusCompleted MetricStatus = "completed"
	MetricStatusFailed    MetricStatus = "failed"
)

// MetricOperation names the computation a MetricRun measured.
type MetricOperation string

// Measured operations.
const (
	OperationDocumentStatistics   MetricOperation = "document_statistics"
	OperationCollectionStatistics MetricOperation = "collection_statistics"
)

// MetricRun records one statistics computation.
// Cache hits are not recorded.
type MetricRun struct {
	ID            string
	Operation     MetricOperation
	DocumentID    string
	CollectionID  string
	Status        MetricStatus
	ContentLength int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Duration returns the processing time, or zero for unfinished runs.
func (r *MetricRun) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Finish stamps the run with its end time and status.
func (r *MetricRun) Finish(status MetricStatus, at time.Time) {
	r.Status = status
	r.FinishedAt = at
}

// MetricsSummary aggregates completed runs.
type MetricsSummary struct {
	Processed        int      `json:"files_processed"`
	MinSeconds       float64  `json:"min_time_processed"`
	AvgSeconds       float64  `json:"avg_time_processed"`
	MaxSeconds       float64  `json:"max_time_processed"`
	LatestSeconds    *float64 `json:"latest_file_processed_timestamp"`
	MaxContentLength int      `json:"max_content_length"`
	AvgContentLength float64  `json:"avg_content_length"`
}

// SummarizeRuns aggregates the completed runs in runs.
// Pending and failed runs are ignored.
func SummarizeRuns(runs []MetricRun) MetricsSummary {
	var (
		summary     MetricsSummary
		totalSecs   float64
		totalLength int
		latest      *MetricRun
	)

	for i := range runs {
		run := &runs[i]
		if run.Status != MetricStatusCompleted {
			continue
		}
		secs := run.Duration().Seconds()
		if summary.Processed == 0 || secs < summary.MinSeconds {
			summary.MinSeconds = secs
		}
		if secs > summary.MaxSeconds {
			summary.MaxSeconds = secs
		}
		if run.ContentLength > summary.MaxContentLength {
			summary.MaxContentLength = run.ContentLength
		}
		if latest == nil || run.FinishedAt.After(latest.FinishedAt) {
			latest = run
		}
		totalSecs += secs
		totalLength += run.ContentLength
		summary.Processed++
	}

	if summary.Processed == 0 {
		return summary
	}
	summary.AvgSeconds = totalSecs / float64(summary.Processed)
	summary.AvgContentLength = float64(totalLength) / float64(summary.Processed)
	latestSecs := latest.Duration().Seconds()
	summary.LatestSeconds = &latestSecs
	return summary
}
