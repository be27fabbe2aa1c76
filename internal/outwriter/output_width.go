package outwriter

import (
	"os"

	"github.com/huangsam/wikistat/internal/contract"
	"golang.org/x/term"
)

// getTerminalWidth returns the configured width override, else the width of
// stdout, else a conservative 80 columns.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// getMaxBarWidth calculates how many cells a histogram bar may take in table
// output once the Key, Pages and Percent columns are accounted for.
func getMaxBarWidth(cfg *contract.Config) int {
	// Key + Pages + Percent with borders/padding
	baseWidth := 30

	available := getTerminalWidth(cfg) - baseWidth
	if available < 10 {
		return 10
	}
	if available > 60 {
		return 60
	}
	return available
}
