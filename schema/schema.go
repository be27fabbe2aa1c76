// Package schema has constants, errors and models for all parts of wikistat.
package schema

import "time"

// PageRecord is one completed page handed from the parser to the aggregator.
type PageRecord struct {
	TitleWords []string // Normalized words of the page title
	TextWords  []string // Normalized words of the revision body
	SizeBucket *int     // Digit bucket of the declared byte size, nil when no size was seen
	Year       int      // Year of the revision timestamp, 0 means unset
}

// RankedWord is a single row of a top-N word list.
type RankedWord struct {
	Rank  int    `json:"rank"`
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// HistogramRow is a single row of a histogram. Rows are dense over the key range,
// so Count may be zero.
type HistogramRow struct {
	Key     int `json:"key"`
	Count   int `json:"count"`
	Percent int `json:"percent"` // Integer-truncated share of the histogram total
}

// Report is the rendered view of the final statistics.
type Report struct {
	Limit      int            `json:"limit"`
	Files      int            `json:"files"`
	Pages      int            `json:"pages"`
	Partial    bool           `json:"partial"`
	TitleWords []RankedWord   `json:"title_words"`
	TextWords  []RankedWord   `json:"text_words"`
	Sizes      []HistogramRow `json:"sizes"`
	Years      []HistogramRow `json:"years"`
	SizeTotal  int            `json:"size_total"`
	YearTotal  int            `json:"year_total"`
}

// FileSummary describes how one archive was processed.
type FileSummary struct {
	Path     string        `json:"path"`
	Codec    Codec         `json:"codec"`
	Bytes    int64         `json:"bytes"` // Size of the archive on disk
	Pages    int           `json:"pages"`
	Dropped  int           `json:"dropped"`
	Duration time.Duration `json:"duration"`
}
