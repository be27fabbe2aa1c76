package schema

import "time"

// HistoryStatus represents the status of the run history store.
type HistoryStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	SchemaVersion uint             `json:"schema_version"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     string           `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TotalPages    int64            `json:"total_pages"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// RunRecord represents a row from the wikistat_runs table.
type RunRecord struct {
	RunID        string    `json:"run_id"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	DurationMs   int64     `json:"duration_ms"`
	TotalFiles   int       `json:"total_files"`
	TotalPages   int       `json:"total_pages"`
	OutputMode   string    `json:"output_mode"`
	Partial      bool      `json:"partial"`
	ConfigParams string    `json:"config_params"`
}

// RunWordRecord represents a row from the wikistat_run_words table.
type RunWordRecord struct {
	RunID   string
	Section string
	Rank    int
	Word    string
	Count   int
}

// RunHistogramRecord represents a row from the wikistat_run_histogram table.
type RunHistogramRecord struct {
	RunID  string
	Kind   string
	Bucket int
	Count  int
}

// RunMeta is the run-level information recorded next to a report.
type RunMeta struct {
	StartedAt    time.Time
	FinishedAt   time.Time
	OutputMode   OutputMode
	ConfigParams map[string]any
}
