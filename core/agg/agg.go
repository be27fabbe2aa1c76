// Package agg has the frequency aggregation for parsed pages.
package agg

import "maps"

// Stats holds the four frequency maps of a run.
// A Stats value is not safe for concurrent use; callers that merge from
// several goroutines guard the destination with their own lock.
type Stats struct {
	Title map[string]int // Title word -> occurrences
	Text  map[string]int // Text word -> occurrences
	Bytes map[int]int    // Size bucket -> pages
	Time  map[int]int    // Year -> pages
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		Title: make(map[string]int),
		Text:  make(map[string]int),
		Bytes: make(map[int]int),
		Time:  make(map[int]int),
	}
}

// Update counts one page. A nil bucket and a zero year are not counted.
func (s *Stats) Update(titleWords, textWords []string, bucket *int, year int) {
	for _, w := range titleWords {
		s.Title[w]++
	}
	for _, w := range textWords {
		s.Text[w]++
	}
	if bucket != nil {
		s.Bytes[*bucket]++
	}
	if year != 0 {
		s.Time[year]++
	}
}

// Merge adds the counts of other into s key by key.
func (s *Stats) Merge(other *Stats) {
	if other == nil {
		return
	}
	mergeCounts(s.Title, other.Title)
	mergeCounts(s.Text, other.Text)
	mergeCounts(s.Bytes, other.Bytes)
	mergeCounts(s.Time, other.Time)
}

func mergeCounts[K comparable](dst, src map[K]int) {
	for k, v := range src {
		dst[k] += v
	}
}

// Pages returns the number of counted pages.
func (s *Stats) Pages() int {
	total := 0
	for _, v := range s.Time {
		total += v
	}
	return total
}

// Clone returns a deep copy of s.
func (s *Stats) Clone() *Stats {
	return &Stats{
		Title: maps.Clone(s.Title),
		Text:  maps.Clone(s.Text),
		Bytes: maps.Clone(s.Bytes),
		Time:  maps.Clone(s.Time),
	}
}

// Equal reports whether both statistics hold the same counts.
func (s *Stats) Equal(other *Stats) bool {
	return maps.Equal(s.Title, other.Title) &&
		maps.Equal(s.Text, other.Text) &&
		maps.Equal(s.Bytes, other.Bytes) &&
		maps.Equal(s.Time, other.Time)
}
