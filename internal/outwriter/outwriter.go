// Package outwriter has output and writer logic.
package outwriter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/schema"
)

// renderFunc renders a whole report into w.
type renderFunc func(w io.Writer, r *schema.Report, cfg *contract.Config) error

// renderers maps every output mode to its renderer.
var renderers = map[schema.OutputMode]renderFunc{
	schema.TextOut:    writeText,
	schema.HTMLOut:    writeHTML,
	schema.JSONOut:    writeJSONReport,
	schema.CSVOut:     writeCSVReport,
	schema.TableOut:   writeTables,
	schema.ParquetOut: writeParquetReport,
}

// Render renders the report in the configured output mode.
func Render(w io.Writer, r *schema.Report, cfg *contract.Config) error {
	render, ok := renderers[cfg.Output]
	if !ok {
		return fmt.Errorf("unsupported output format: %s", cfg.Output)
	}
	if err := render(w, r, cfg); err != nil {
		return fmt.Errorf("error writing %s output: %w", cfg.Output, err)
	}
	return nil
}

// WriteReport renders the report in memory and replaces cfg.OutputFile with it,
// so a failed render leaves any previous file untouched. It returns the number
// of bytes written.
func WriteReport(r *schema.Report, cfg *contract.Config) (int64, error) {
	var buf bytes.Buffer
	if err := Render(&buf, r, cfg); err != nil {
		return 0, err
	}
	if err := writeAtomic(cfg.OutputFile, buf.Bytes(), fmt.Sprintf("Wrote %s", cfg.Output)); err != nil {
		return 0, err
	}
	return int64(buf.Len()), nil
}
