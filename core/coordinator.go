package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/huangsam/wikistat/core/agg"
	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/schema"
	"golang.org/x/sync/errgroup"
)

// ProcessFunc processes one archive into statistics.
type ProcessFunc func(ctx context.Context, path string, bufferSize int) (*agg.Stats, schema.FileSummary, error)

// Coordinator fans archives out over a worker pool and merges every
// per-file result into one shared Stats under a single lock.
type Coordinator struct {
	Workers    int           // Total thread budget; the pool gets Workers-1 goroutines
	BufferSize int           // Read buffer in front of each decompressor
	Timeout    time.Duration // Bound for the whole run, 0 means none
	Process    ProcessFunc   // Defaults to ProcessFile
	OnFile     func(schema.FileSummary)
}

// CoordinatorResult is the merged outcome of a run.
type CoordinatorResult struct {
	Stats    *agg.Stats
	Files    []schema.FileSummary // In completion order
	Partial  bool                 // Set when the timeout cut the run short
	Duration time.Duration
}

// Run processes files and returns the merged statistics. Any file failure
// fails the run. When the timeout elapses first, the results merged so far
// are returned with Partial set.
func (c *Coordinator) Run(ctx context.Context, files []string) (*CoordinatorResult, error) {
	start := time.Now()
	process := c.Process
	if process == nil {
		process = ProcessFile
	}

	runCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	res := &CoordinatorResult{Stats: agg.NewStats()}
	var mu sync.Mutex
	merge := func(stats *agg.Stats, summary schema.FileSummary) {
		mu.Lock()
		defer mu.Unlock()
		res.Stats.Merge(stats)
		res.Files = append(res.Files, summary)
		if c.OnFile != nil {
			c.OnFile(summary)
		}
	}

	var err error
	if c.Workers <= 1 {
		err = runSequential(runCtx, files, c.BufferSize, process, merge)
	} else {
		err = runPool(runCtx, files, c.Workers-1, c.BufferSize, process, merge)
	}
	res.Duration = time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			res.Partial = true
			contract.LogWarn("Run timed out after "+c.Timeout.String()+", report is partial", err)
			return res, nil
		}
		return nil, err
	}
	return res, nil
}

// runSequential processes files in input order on the calling goroutine.
func runSequential(ctx context.Context, files []string, bufferSize int, process ProcessFunc, merge func(*agg.Stats, schema.FileSummary)) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats, summary, err := process(ctx, f, bufferSize)
		if err != nil {
			return err
		}
		merge(stats, summary)
	}
	return nil
}

// runPool submits every file at once and lets n workers drain the queue.
func runPool(ctx context.Context, files []string, n, bufferSize int, process ProcessFunc, merge func(*agg.Stats, schema.FileSummary)) error {
	fileCh := make(chan string, len(files))
	for _, f := range files {
		fileCh <- f
	}
	close(fileCh)

	g, gctx := errgroup.WithContext(ctx)
	for range min(n, max(len(files), 1)) {
		g.Go(func() error {
			for f := range fileCh {
				if err := gctx.Err(); err != nil {
					return err
				}
				stats, summary, err := process(gctx, f, bufferSize)
				if err != nil {
					return err
				}
				merge(stats, summary)
			}
			return nil
		})
	}
	return g.Wait()
}
