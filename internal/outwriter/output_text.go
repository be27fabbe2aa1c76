package outwriter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/schema"
)

// Headings of the plain and marked-up reports.
const (
	titleHeading    = "Топ-%d слов в заголовках статей:"
	textHeading     = "Топ-%d слов в статьях:"
	sizeHeading     = "Распределение статей по размеру:"
	yearHeading     = "Распределение статей по времени:"
	htmlTitle       = `<h1 style="text-align: center;">Статистика архивов</h1>`
	htmlSizeHeading = "Гистограмма распределения статей по размеру:"
	htmlYearHeading = "Гистограмма распределения статей по времени:"
	htmlBarEnd      = "&gt;<br />"
)

func topHeading(format string, limit int) string {
	return fmt.Sprintf(format, limit)
}

// writeText writes the plain report: two ranked lists as "count word" and
// two histograms as "key count", separated by blank lines.
func writeText(w io.Writer, r *schema.Report, _ *contract.Config) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(topHeading(titleHeading, r.Limit) + "\n")
	writeWordLines(bw, r.TitleWords, "")
	bw.WriteString("\n")

	bw.WriteString(topHeading(textHeading, r.Limit) + "\n")
	writeWordLines(bw, r.TextWords, "")
	bw.WriteString("\n")

	bw.WriteString(sizeHeading + "\n")
	writeHistogramLines(bw, r.Sizes)
	bw.WriteString("\n")

	bw.WriteString(yearHeading + "\n")
	writeHistogramLines(bw, r.Years)

	return bw.Flush()
}

// writeHTML writes the marked-up report with "=" bars, one per percent.
func writeHTML(w io.Writer, r *schema.Report, _ *contract.Config) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(htmlTitle + "\n")

	bw.WriteString("<p>" + topHeading(titleHeading, r.Limit))
	writeWordLines(bw, r.TitleWords, "<br />")
	bw.WriteString("</p>\n")

	bw.WriteString("<p>" + topHeading(textHeading, r.Limit))
	writeWordLines(bw, r.TextWords, "<br />")
	bw.WriteString("</p>\n")

	bw.WriteString("<p>" + htmlSizeHeading)
	writeHTMLBars(bw, r.Sizes)
	bw.WriteString("</p>\n")

	bw.WriteString("<p>" + htmlYearHeading)
	writeHTMLBars(bw, r.Years)
	bw.WriteString("</p>\n")

	return bw.Flush()
}

func writeWordLines(bw *bufio.Writer, words []schema.RankedWord, prefix string) {
	for _, rw := range words {
		bw.WriteString(prefix)
		bw.WriteString(strconv.Itoa(rw.Count))
		bw.WriteByte(' ')
		bw.WriteString(rw.Word)
		bw.WriteByte('\n')
	}
}

func writeHistogramLines(bw *bufio.Writer, rows []schema.HistogramRow) {
	for _, h := range rows {
		bw.WriteString(strconv.Itoa(h.Key))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(h.Count))
		bw.WriteByte('\n')
	}
}

func writeHTMLBars(bw *bufio.Writer, rows []schema.HistogramRow) {
	for _, h := range rows {
		bw.WriteString("<br />")
		bw.WriteString(strconv.Itoa(h.Key))
		bw.WriteString(": ")
		bw.WriteString(strings.Repeat("=", h.Percent))
		bw.WriteString(htmlBarEnd)
	}
}
