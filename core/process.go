package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/wikistat/core/agg"
	"github.com/huangsam/wikistat/core/algo"
	"github.com/huangsam/wikistat/core/parse"
	"github.com/huangsam/wikistat/internal/archive"
	"github.com/huangsam/wikistat/schema"
)

// ProcessFile decompresses and parses one archive and returns its statistics.
// Errors carry the path and keep their failure kind for errors.Is.
func ProcessFile(ctx context.Context, path string, bufferSize int) (*agg.Stats, schema.FileSummary, error) {
	start := time.Now()
	summary := schema.FileSummary{Path: path}

	r, err := archive.Open(path, bufferSize)
	if err != nil {
		return nil, summary, fmt.Errorf("%s: %w", path, err)
	}
	defer func() { _ = r.Close() }()
	summary.Codec = r.Codec
	summary.Bytes = r.Size

	stats := agg.NewStats()
	b := parse.NewBuilder(algo.CyrillicWords, func(rec schema.PageRecord) {
		stats.Update(rec.TitleWords, rec.TextWords, rec.SizeBucket, rec.Year)
	})
	if err := parse.Parse(ctx, r, b); err != nil {
		return nil, summary, fmt.Errorf("%s: %w", path, err)
	}

	summary.Pages = b.Emitted()
	summary.Dropped = b.Dropped()
	summary.Duration = time.Since(start)
	return stats, summary, nil
}
