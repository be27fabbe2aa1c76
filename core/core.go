// Package core has core logic for parsing archives, aggregating and reporting.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/internal/outwriter"
	"github.com/huangsam/wikistat/schema"
)

// ExecuteReport runs the pipeline over cfg.Inputs, writes the report to
// cfg.OutputFile and records the run when a history store is configured.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	started := time.Now()
	report, _, err := GetReport(ctx, cfg)
	if err != nil {
		return err
	}

	written, err := outwriter.WriteReport(report, cfg)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	finished := time.Now()

	runID := recordRun(mgr, report, cfg, started, finished)
	if !shouldSuppressHeader(ctx) {
		logReportSummary(cfg, report, written, finished.Sub(started), runID)
	}
	return nil
}

// GetReport runs the pipeline and returns the report without writing it.
func GetReport(ctx context.Context, cfg *contract.Config) (*schema.Report, *CoordinatorResult, error) {
	ctx = withVerbose(ctx, cfg.Verbose)
	if !shouldSuppressHeader(ctx) {
		logReportHeader(cfg)
	}

	coord := &Coordinator{
		Workers:    cfg.Threads,
		BufferSize: cfg.BufferSize,
		Timeout:    cfg.Timeout,
	}
	if isVerbose(ctx) {
		coord.OnFile = logFileSummary
	}

	res, err := coord.Run(ctx, cfg.Inputs)
	if err != nil {
		return nil, nil, err
	}

	report := BuildReport(res.Stats, cfg.Limit)
	report.Files = len(res.Files)
	report.Partial = res.Partial
	return report, res, nil
}

// recordRun stores the report in the run history. Failures only warn,
// since the report itself has already been written.
func recordRun(mgr contract.HistoryManager, report *schema.Report, cfg *contract.Config, started, finished time.Time) string {
	if mgr == nil {
		return ""
	}
	store := mgr.GetRunStore()
	if store == nil {
		return ""
	}
	runID, err := store.RecordRun(*report, schema.RunMeta{
		StartedAt:    started,
		FinishedAt:   finished,
		OutputMode:   cfg.Output,
		ConfigParams: cfg.Params(),
	})
	if err != nil {
		contract.LogWarn("Run history recording failed", err)
		return ""
	}
	return runID
}
