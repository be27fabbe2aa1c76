// Package cmd defines the command-line interface for wikistat.
package cmd

import (
	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("history-backend", "", "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", schema.DefaultWidth, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().StringP("inputs", "i", "", "Comma-separated list of dump files (.xml, .bz2, .gz, .zst, .lz4)")
	reportCmd.Flags().StringP("output", "o", schema.DefaultOutputFile, "Path to write the report to ('-' for stdout)")
	reportCmd.Flags().StringP("format", "f", string(schema.TextOut), "Report format: text or html or json or csv or table or parquet")
	reportCmd.Flags().Bool("html", false, "Shortcut for --format html")
	reportCmd.Flags().IntP("threads", "t", schema.DefaultThreads, "Thread budget; archives are read by threads-1 workers")
	reportCmd.Flags().IntP("buffer-size", "b", schema.DefaultBufferSize, "Read buffer size in bytes in front of each decompressor")
	reportCmd.Flags().IntP("limit", "l", schema.DefaultLimit, "Number of words in each ranked list")
	reportCmd.Flags().String("timeout", schema.DefaultTimeout.String(), "Bound for the whole run; a timed out run reports what it merged")
	reportCmd.Flags().BoolP("verbose", "v", false, "Print a summary line per finished archive")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}

	// Bind all flags of historyListCmd to Viper
	historyListCmd.Flags().Int("runs", 20, "Number of most recent runs to list (0 = all)")
	if err := viper.BindPFlags(historyListCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history list flags", err)
	}

	// Bind all flags of historyExportCmd to Viper
	historyExportCmd.Flags().String("output-file", "", "Prefix of the Parquet files to write")
	if err := viper.BindPFlags(historyExportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history export flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
