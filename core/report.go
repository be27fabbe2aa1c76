package core

import (
	"github.com/huangsam/wikistat/core/agg"
	"github.com/huangsam/wikistat/core/algo"
	"github.com/huangsam/wikistat/schema"
)

// BuildReport ranks the word maps and expands both histograms of stats.
func BuildReport(stats *agg.Stats, limit int) *schema.Report {
	sizes, sizeTotal := algo.DenseHistogram(stats.Bytes)
	years, yearTotal := algo.DenseHistogram(stats.Time)
	return &schema.Report{
		Limit:      limit,
		Pages:      stats.Pages(),
		TitleWords: algo.RankWords(stats.Title, limit),
		TextWords:  algo.RankWords(stats.Text, limit),
		Sizes:      sizes,
		Years:      years,
		SizeTotal:  sizeTotal,
		YearTotal:  yearTotal,
	}
}
