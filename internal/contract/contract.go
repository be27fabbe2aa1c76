// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/huangsam/wikistat/schema"
)

// HistoryManager defines the interface for managing the run history store.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for persisting finished reports.
type RunStore interface {
	// RecordRun stores a report with its run metadata and returns the run ID
	RecordRun(report schema.Report, meta schema.RunMeta) (string, error)

	// ListRuns returns the most recent runs, newest first
	ListRuns(limit int) ([]schema.RunRecord, error)

	// GetRunWords returns the ranked words stored for a run
	GetRunWords(runID string) ([]schema.RunWordRecord, error)

	// GetRunHistogram returns the histogram rows stored for a run
	GetRunHistogram(runID string) ([]schema.RunHistogramRecord, error)

	// GetStatus returns status information about the store
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection
	Close() error
}
