package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/wikistat/schema"
)

// Color variables for console output.
var (
	ErrorColor   = color.New(color.FgRed, color.Bold) // ErrorColor marks fatal failures.
	WarnColor    = color.New(color.FgYellow)          // WarnColor marks recoverable problems.
	TitleColor   = color.New(color.FgCyan, color.Bold)
	TextColor    = color.New(color.FgGreen, color.Bold)
	BarColor     = color.New(color.FgMagenta)
	MutedColor   = color.New(color.Faint)
	historyDBEnv = "WIKISTAT_HISTORY_DB"
)

// IsStdout reports whether filePath selects standard output.
func IsStdout(filePath string) bool {
	return filePath == "" || filePath == "-"
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintln(os.Stderr, fatalLine(msg, err))
	os.Exit(1)
}

// fatalLine formats a fatal error, tagged with its pipeline failure kind when it has one.
func fatalLine(msg string, err error) string {
	label := ErrorColor.Sprint("Fatal")
	if kind := schema.FailureKind(err); kind != "" {
		label += " [" + kind + "]"
	}
	return fmt.Sprintf("%s %s: %v", label, msg, err)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s: %v\n", WarnColor.Sprint("Warn"), msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	if p := os.Getenv(historyDBEnv); p != "" {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".wikistat_history.db"
	}
	return filepath.Join(homeDir, ".wikistat_history.db")
}

// SplitList splits a comma separated list, trimming blanks and dropping empty items.
func SplitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to leave room for the "..." prefix.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
