package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/internal/parquet"
	"github.com/huangsam/wikistat/schema"
)

// writeJSONReport writes the report model as indented JSON.
func writeJSONReport(w io.Writer, r *schema.Report, _ *contract.Config) error {
	return writeJSON(w, r)
}

// writeCSVReport writes one row per ranked word and histogram bucket.
func writeCSVReport(w io.Writer, r *schema.Report, _ *contract.Config) error {
	header := []string{"section", "rank", "key", "count"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range parquet.ReportRows(r) {
			rec := []string{
				row.Section,
				strconv.Itoa(int(row.Rank)),
				row.Key,
				strconv.FormatInt(row.Count, 10),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeParquetReport writes the same rows as the CSV output, plus percentages.
func writeParquetReport(w io.Writer, r *schema.Report, _ *contract.Config) error {
	return parquet.WriteRows(w, parquet.ReportRows(r))
}
