package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const barRune = "█"

// writeTables writes the report as four terminal tables with histogram bars.
func writeTables(w io.Writer, r *schema.Report, cfg *contract.Config) error {
	paint := func(c *color.Color, s string) string {
		if !cfg.UseColors {
			return s
		}
		return c.Sprint(s)
	}

	sections := []struct {
		heading string
		color   *color.Color
		render  func() error
	}{
		{fmt.Sprintf("📰 Top %d title words", r.Limit), contract.TitleColor, func() error { return writeWordTable(w, r.TitleWords) }},
		{fmt.Sprintf("📄 Top %d text words", r.Limit), contract.TextColor, func() error { return writeWordTable(w, r.TextWords) }},
		{"📏 Pages by size bucket", contract.TitleColor, func() error { return writeHistogramTable(w, "Bucket", r.Sizes, cfg, paint) }},
		{"📅 Pages by year", contract.TitleColor, func() error { return writeHistogramTable(w, "Year", r.Years, cfg, paint) }},
	}
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, paint(s.color, s.heading)); err != nil {
			return err
		}
		if err := s.render(); err != nil {
			return err
		}
	}

	status := ""
	if r.Partial {
		status = " (partial: timed out)"
	}
	summary := fmt.Sprintf("Aggregated %s pages from %d files%s", humanize.Comma(int64(r.Pages)), r.Files, status)
	_, err := fmt.Fprintf(w, "\n%s\n", paint(contract.MutedColor, summary))
	return err
}

// writeWordTable renders one ranked word list.
func writeWordTable(w io.Writer, words []schema.RankedWord) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Word", "Count"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(words))
	for _, rw := range words {
		data = append(data, []string{strconv.Itoa(rw.Rank), rw.Word, humanize.Comma(int64(rw.Count))})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeHistogramTable renders one histogram, scaling bars to the largest bucket.
func writeHistogramTable(w io.Writer, keyHeader string, rows []schema.HistogramRow, cfg *contract.Config, paint func(*color.Color, string) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{keyHeader, "Pages", "%", "Bar"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxBar := getMaxBarWidth(cfg)
	peak := 0
	for _, h := range rows {
		peak = max(peak, h.Count)
	}

	data := make([][]string, 0, len(rows))
	for _, h := range rows {
		data = append(data, []string{
			strconv.Itoa(h.Key),
			humanize.Comma(int64(h.Count)),
			strconv.Itoa(h.Percent),
			paint(contract.BarColor, strings.Repeat(barRune, barLength(h.Count, peak, maxBar))),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// barLength scales count against peak into at most width cells. Non-zero
// counts always get at least one cell.
func barLength(count, peak, width int) int {
	if peak <= 0 || count <= 0 {
		return 0
	}
	return max(count*width/peak, 1)
}
