package algo

import (
	"sort"

	"github.com/huangsam/wikistat/schema"
)

// RankWords sorts words by count in descending order, breaking ties by the
// word in ascending order, and returns the top 'limit' entries. If limit is
// greater than the number of words, all words are returned in sorted order.
func RankWords(counts map[string]int, limit int) []schema.RankedWord {
	ranked := make([]schema.RankedWord, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, schema.RankedWord{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// KeyRange returns the smallest and largest key of m. ok is false for an empty map.
func KeyRange(m map[int]int) (lo, hi int, ok bool) {
	for k := range m {
		if !ok {
			lo, hi, ok = k, k, true
			continue
		}
		lo = min(lo, k)
		hi = max(hi, k)
	}
	return lo, hi, ok
}

// DenseHistogram expands m into one row per integer key between its smallest
// and largest key, inclusive. Missing keys get a zero count. Percent is the
// integer-truncated share of the total. It also returns the total.
func DenseHistogram(m map[int]int) ([]schema.HistogramRow, int) {
	lo, hi, ok := KeyRange(m)
	if !ok {
		return []schema.HistogramRow{}, 0
	}

	total := 0
	for _, count := range m {
		total += count
	}

	rows := make([]schema.HistogramRow, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		count := m[k]
		percent := 0
		if total > 0 {
			percent = count * 100 / total
		}
		rows = append(rows, schema.HistogramRow{Key: k, Count: count, Percent: percent})
	}
	return rows, total
}
