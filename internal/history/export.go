package history

import (
	"errors"
	"fmt"

	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/internal/parquet"
	"github.com/huangsam/wikistat/schema"
)

// ExportFiles names the three Parquet files written for a prefix.
func ExportFiles(prefix string) (runs, words, histogram string) {
	return prefix + ".runs.parquet", prefix + ".run_words.parquet", prefix + ".run_histogram.parquet"
}

// ExecuteHistoryExport exports every recorded run of store to Parquet files named after prefix.
func ExecuteHistoryExport(store contract.RunStore, prefix string) error {
	if prefix == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("run history is not enabled. Set --history-backend to export")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)

	runs, err := store.ListRuns(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	var words []schema.RunWordRecord
	var hist []schema.RunHistogramRecord
	for _, run := range runs {
		w, err := store.GetRunWords(run.RunID)
		if err != nil {
			return fmt.Errorf("failed to retrieve words of run %s: %w", run.RunID, err)
		}
		h, err := store.GetRunHistogram(run.RunID)
		if err != nil {
			return fmt.Errorf("failed to retrieve histogram of run %s: %w", run.RunID, err)
		}
		words = append(words, w...)
		hist = append(hist, h...)
	}

	runsFile, wordsFile, histFile := ExportFiles(prefix)

	if err := parquet.WriteFile(parquet.ConvertRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runs), runsFile)

	if err := parquet.WriteFile(parquet.ConvertRunWordRecords(words), wordsFile); err != nil {
		return fmt.Errorf("failed to write run words: %w", err)
	}
	fmt.Printf("Exported %d word records to: %s\n", len(words), wordsFile)

	if err := parquet.WriteFile(parquet.ConvertRunHistogramRecords(hist), histFile); err != nil {
		return fmt.Errorf("failed to write run histogram: %w", err)
	}
	fmt.Printf("Exported %d histogram records to: %s\n", len(hist), histFile)

	fmt.Println("\nExport complete! The Parquet files can be used with DuckDB, Pandas (via pyarrow) or Spark.")
	return nil
}
