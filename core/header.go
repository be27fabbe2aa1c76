package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/schema"
)

// logReportHeader prints a concise, 2-line header before the archives are read.
// Headers go to stderr so a report written to stdout stays clean.
func logReportHeader(cfg *contract.Config) {
	_, _ = fmt.Fprintf(os.Stderr, "📚 Archives: %d (threads: %d, buffer: %s)\n",
		len(cfg.Inputs), cfg.Threads, humanize.IBytes(uint64(cfg.BufferSize)))
	_, _ = fmt.Fprintf(os.Stderr, "📝 Output: %s (%s, top %d)\n", outputName(cfg.OutputFile), cfg.Output, cfg.Limit)
}

// logFileSummary prints one line per finished archive.
func logFileSummary(s schema.FileSummary) {
	_, _ = fmt.Fprintf(os.Stderr, "   ✔ %s [%s, %s] %s pages (%s dropped) in %s\n",
		contract.TruncatePath(filepath.Base(s.Path), 48), s.Codec, humanize.IBytes(uint64(s.Bytes)),
		humanize.Comma(int64(s.Pages)), humanize.Comma(int64(s.Dropped)),
		s.Duration.Round(time.Millisecond))
}

// logReportSummary prints the closing line of a run.
func logReportSummary(cfg *contract.Config, report *schema.Report, written int64, elapsed time.Duration, runID string) {
	status := "✅"
	if report.Partial {
		status = "⚠️ "
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s %s pages from %d files → %s (%s) in %s\n",
		status, humanize.Comma(int64(report.Pages)), report.Files,
		outputName(cfg.OutputFile), humanize.Bytes(uint64(written)), elapsed.Round(time.Millisecond))
	if runID != "" {
		_, _ = fmt.Fprintf(os.Stderr, "🗂  Run recorded: %s\n", runID)
	}
}

func outputName(path string) string {
	if contract.IsStdout(path) {
		return "stdout"
	}
	return path
}
