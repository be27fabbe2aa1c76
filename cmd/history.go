package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/internal/history"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyConfigSetup resolves the history backend without reading archives.
func historyConfigSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := contract.ProcessHistoryConfig(cfg, input); err != nil {
		return err
	}
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historySetup performs minimal setup for history commands that read the store.
func historySetup() error {
	if err := historyConfigSetup(); err != nil {
		return err
	}
	if err := history.InitHistory(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize run history: %w", err)
	}
	historyManager = history.Manager
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetupWrapper skips opening the store so migrate can run against
// a schema the store would otherwise upgrade on open.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyConfigSetup()
}

// historyCmd focused on run history management.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the history of report runs",
	Long: `Manage the stored history of report runs.

When enabled, every report run stores:
- Run metadata (timestamps, duration, files, pages, parameters)
- The ranked title and text words
- Both histograms (pages by size bucket and by year)

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status  - Show run history statistics
  list    - List the most recent runs
  export  - Export runs to Parquet for analytics
  clear   - Remove all run history
  migrate - Run database schema migrations

Examples:
  # Record runs in the default SQLite file
  wikistat report -i ruwiki.xml.bz2 --history-backend sqlite

  # Check what has been recorded
  wikistat history status --history-backend sqlite`,
}

// historyStatusCmd shows run history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run history statistics and connection details",
	Long: `Show the backend, schema version, number of runs, first and last run,
total pages recorded and the size of each history table.

Examples:
  wikistat history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := historyManager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		history.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyListCmd lists the most recent runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent report runs",
	Long: `List recorded runs, newest first.

Examples:
  # The last 5 runs
  wikistat history list --runs 5 --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runs, err := historyManager.GetRunStore().ListRuns(viper.GetInt("runs"))
		if err != nil {
			contract.LogFatal("Failed to list runs", err)
		}
		history.PrintRuns(os.Stdout, runs)
	},
}

// historyClearCmd clears the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded runs",
	Long: `Delete all stored runs with their words and histograms.

For SQLite the database file is removed. For MySQL and PostgreSQL the
history tables and the migration table are dropped.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  wikistat history export --output-file backup --history-backend sqlite
  wikistat history clear --history-backend sqlite`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ClearHistory(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// historyExportCmd exports the run history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all stored runs to Parquet files named after --output-file:
- <prefix>.runs.parquet           run metadata
- <prefix>.run_words.parquet      ranked words per run
- <prefix>.run_histogram.parquet  histogram rows per run

Requires: --output-file parameter

Examples:
  wikistat history export --output-file wikistat --history-backend sqlite
  duckdb -c "SELECT * FROM read_parquet('wikistat.runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ExecuteHistoryExport(historyManager.GetRunStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  wikistat history migrate --history-backend sqlite

  # Roll back to the initial state
  wikistat history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := history.Migrate(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
