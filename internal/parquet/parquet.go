// Package parquet provides data structures and functions for exporting wikistat
// reports and run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/wikistat/schema"
	"github.com/parquet-go/parquet-go"
)

// ReportRow is one flattened line of a report: a ranked word or a histogram bucket.
type ReportRow struct {
	// Section is one of title, text, size or year
	Section string `parquet:"section,dict,snappy"`

	// Rank is the 1-based position in the section
	Rank int32 `parquet:"rank,snappy"`

	// Key is the word, the size bucket or the year
	Key string `parquet:"key,snappy"`

	// Count is the number of occurrences or pages
	Count int64 `parquet:"count,snappy"`

	// Percent is the integer share of a histogram total, zero for words
	Percent int32 `parquet:"percent,snappy"`
}

// Run represents a single recorded run.
// This struct maps to the wikistat_runs database table.
type Run struct {
	RunID        string    `parquet:"run_id,snappy"`
	StartedAt    time.Time `parquet:"started_at,snappy"`
	FinishedAt   time.Time `parquet:"finished_at,snappy"`
	DurationMs   int64     `parquet:"duration_ms,snappy"`
	TotalFiles   int32     `parquet:"total_files,snappy"`
	TotalPages   int64     `parquet:"total_pages,snappy"`
	OutputMode   string    `parquet:"output_mode,dict,snappy"`
	Partial      bool      `parquet:"partial,snappy"`
	ConfigParams *string   `parquet:"config_params,optional,snappy"` // JSON, nullable
}

// RunWord maps to the wikistat_run_words database table.
type RunWord struct {
	RunID   string `parquet:"run_id,dict,snappy"`
	Section string `parquet:"section,dict,snappy"`
	Rank    int32  `parquet:"rank,snappy"`
	Word    string `parquet:"word,snappy"`
	Count   int64  `parquet:"count,snappy"`
}

// RunHistogram maps to the wikistat_run_histogram database table.
type RunHistogram struct {
	RunID  string `parquet:"run_id,dict,snappy"`
	Kind   string `parquet:"kind,dict,snappy"`
	Bucket int32  `parquet:"bucket,snappy"`
	Count  int64  `parquet:"count,snappy"`
}

// WriteRows writes rows to w as one Parquet file, with the schema derived from T's struct tags.
func WriteRows[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

// WriteFile writes rows to a new Parquet file at outputPath.
func WriteFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteRows(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// ReadFile reads every row of the Parquet file at path.
func ReadFile[T any](path string) ([]T, error) {
	rows, err := parquet.ReadFile[T](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}
	return rows, nil
}

// ReportRows flattens a report into rows: title words, text words, then
// the size and year histograms in key order.
func ReportRows(r *schema.Report) []ReportRow {
	rows := make([]ReportRow, 0, len(r.TitleWords)+len(r.TextWords)+len(r.Sizes)+len(r.Years))
	words := func(section schema.Section, ranked []schema.RankedWord) {
		for _, w := range ranked {
			rows = append(rows, ReportRow{Section: string(section), Rank: int32(w.Rank), Key: w.Word, Count: int64(w.Count)})
		}
	}
	hist := func(kind schema.HistogramKind, hrows []schema.HistogramRow) {
		for i, h := range hrows {
			rows = append(rows, ReportRow{
				Section: string(kind),
				Rank:    int32(i + 1),
				Key:     strconv.Itoa(h.Key),
				Count:   int64(h.Count),
				Percent: int32(h.Percent),
			})
		}
	}
	words(schema.TitleSection, r.TitleWords)
	words(schema.TextSection, r.TextWords)
	hist(schema.SizeHistogram, r.Sizes)
	hist(schema.YearHistogram, r.Years)
	return rows
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		var params *string
		if record.ConfigParams != "" {
			p := record.ConfigParams
			params = &p
		}
		result[i] = Run{
			RunID:        record.RunID,
			StartedAt:    record.StartedAt,
			FinishedAt:   record.FinishedAt,
			DurationMs:   record.DurationMs,
			TotalFiles:   int32(record.TotalFiles),
			TotalPages:   int64(record.TotalPages),
			OutputMode:   record.OutputMode,
			Partial:      record.Partial,
			ConfigParams: params,
		}
	}
	return result
}

// ConvertRunWordRecords converts schema.RunWordRecord to RunWord for Parquet export.
func ConvertRunWordRecords(records []schema.RunWordRecord) []RunWord {
	result := make([]RunWord, len(records))
	for i, record := range records {
		result[i] = RunWord{
			RunID:   record.RunID,
			Section: record.Section,
			Rank:    int32(record.Rank),
			Word:    record.Word,
			Count:   int64(record.Count),
		}
	}
	return result
}

// ConvertRunHistogramRecords converts schema.RunHistogramRecord to RunHistogram for Parquet export.
func ConvertRunHistogramRecords(records []schema.RunHistogramRecord) []RunHistogram {
	result := make([]RunHistogram, len(records))
	for i, record := range records {
		result[i] = RunHistogram{
			RunID:  record.RunID,
			Kind:   record.Kind,
			Bucket: int32(record.Bucket),
			Count:  int64(record.Count),
		}
	}
	return result
}
