package contract

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/wikistat/schema"
)

// MaxResultLimit caps the size of the ranked word lists.
const MaxResultLimit = 100000

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a report run.
// This struct remains the "final, validated" config.
type Config struct {
	Inputs     []string
	OutputFile string
	Output     schema.OutputMode
	Threads    int
	BufferSize int
	Limit      int
	Timeout    time.Duration
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	Verbose    bool

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Color            string `mapstructure:"color"`
	Width            int    `mapstructure:"width"`

	// --- Fields from reportCmd.Flags() ---
	Inputs     string `mapstructure:"inputs"`
	Output     string `mapstructure:"output"`
	Format     string `mapstructure:"format"`
	HTML       bool   `mapstructure:"html"`
	Threads    int    `mapstructure:"threads"`
	BufferSize int    `mapstructure:"buffer-size"`
	Limit      int    `mapstructure:"limit"`
	Timeout    string `mapstructure:"timeout"`
	Verbose    bool   `mapstructure:"verbose"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Inputs != nil {
		clone.Inputs = make([]string, len(c.Inputs))
		copy(clone.Inputs, c.Inputs)
	}
	return &clone
}

// Params returns the run parameters recorded next to a report in the history store.
func (c *Config) Params() map[string]any {
	return map[string]any{
		"inputs":      c.Inputs,
		"threads":     c.Threads,
		"buffer_size": c.BufferSize,
		"limit":       c.Limit,
		"timeout":     c.Timeout.String(),
		"output":      string(c.Output),
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processInputs(cfg, input); err != nil {
		return err
	}
	return validateBackendConfig(cfg, input)
}

// ProcessServerConfig validates settings for the MCP server. Inputs are
// optional because every tool call may name its own archives.
func ProcessServerConfig(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if strings.TrimSpace(input.Inputs) != "" {
		if err := processInputs(cfg, input); err != nil {
			return err
		}
	}
	return validateBackendConfig(cfg, input)
}

// ProcessHistoryConfig validates only the history settings, for commands
// that never read archives.
func ProcessHistoryConfig(cfg *Config, input *ConfigRawInput) error {
	return validateBackendConfig(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfig validates the history backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend == "" {
		cfg.HistoryBackend = schema.NoneBackend
	}
	if _, ok := schema.ValidHistoryBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = strings.TrimSpace(input.Output)
	if cfg.OutputFile == "" {
		cfg.OutputFile = schema.DefaultOutputFile
	}
	cfg.Width = input.Width
	cfg.Verbose = input.Verbose

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Threads Validation ---
	if input.Threads < schema.MinThreads || input.Threads > schema.MaxThreads {
		return fmt.Errorf("threads must be between %d and %d (received %d)", schema.MinThreads, schema.MaxThreads, input.Threads)
	}
	cfg.Threads = input.Threads

	// --- 2. Buffer Size Validation ---
	if input.BufferSize <= 0 {
		return fmt.Errorf("buffer-size must be greater than 0 (received %d)", input.BufferSize)
	}
	cfg.BufferSize = input.BufferSize

	// --- 3. Limit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.Limit = input.Limit

	// --- 4. Timeout Validation ---
	cfg.Timeout = schema.DefaultTimeout
	if input.Timeout != "" {
		timeout, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", input.Timeout, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", input.Timeout)
		}
		cfg.Timeout = timeout
	}

	// --- 5. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Format))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if input.HTML {
		if cfg.Output != schema.TextOut && cfg.Output != schema.HTMLOut {
			return fmt.Errorf("--html conflicts with --format %s", cfg.Output)
		}
		cfg.Output = schema.HTMLOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, html, json, csv, table, parquet", input.Format)
	}

	return nil
}

// processInputs splits the comma separated input list and checks every file.
func processInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Inputs = SplitList(input.Inputs)
	if len(cfg.Inputs) == 0 {
		return fmt.Errorf("at least one input file is required (--inputs)")
	}
	for _, path := range cfg.Inputs {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("input file %q: %w", path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("input file %q is a directory", path)
		}
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// RevalidateReport applies per-request overrides on a cloned Config and
// re-checks them. Empty or zero values keep the base settings.
func RevalidateReport(cfg *Config, inputs string, threads, limit int) error {
	if inputs != "" {
		if err := processInputs(cfg, &ConfigRawInput{Inputs: inputs}); err != nil {
			return err
		}
	}
	if len(cfg.Inputs) == 0 {
		return fmt.Errorf("at least one input file is required (inputs)")
	}
	if threads != 0 {
		if threads < schema.MinThreads || threads > schema.MaxThreads {
			return fmt.Errorf("threads must be between %d and %d (received %d)", schema.MinThreads, schema.MaxThreads, threads)
		}
		cfg.Threads = threads
	}
	if limit != 0 {
		if limit < 0 || limit > MaxResultLimit {
			return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, limit)
		}
		cfg.Limit = limit
	}
	return nil
}
