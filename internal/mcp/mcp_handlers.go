package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huangsam/wikistat/core"
	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

const defaultRunListLimit = 20

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

// runStore returns the configured store or an error when history is disabled.
func (h *toolHandler) runStore() (contract.RunStore, error) {
	if h.mgr == nil {
		return nil, errors.New("run history is not enabled")
	}
	store := h.mgr.GetRunStore()
	if store == nil {
		return nil, errors.New("run history is not enabled")
	}
	return store, nil
}

func (h *toolHandler) handleAnalyzeArchives(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Verbose = false

	inputs := request.GetString("inputs", "")
	threads := request.GetInt("threads", 0)
	limit := request.GetInt("limit", 0)
	if err := contract.RevalidateReport(cfg, inputs, threads, limit); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	report, _, err := core.GetReport(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListRuns(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store, err := h.runStore()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	limit := request.GetInt("limit", defaultRunListLimit)
	runs, err := store.ListRuns(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list runs: %v", err)), nil
	}
	if runs == nil {
		runs = []schema.RunRecord{}
	}

	jsonData, _ := json.MarshalIndent(runs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// runDetail is the get_run response body.
type runDetail struct {
	RunID     string                      `json:"run_id"`
	Words     []schema.RunWordRecord      `json:"words"`
	Histogram []schema.RunHistogramRecord `json:"histogram"`
}

func (h *toolHandler) handleGetRun(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	runID := request.GetString("run_id", "")
	if runID == "" {
		return mcp.NewToolResultError("run_id is required"), nil
	}
	store, err := h.runStore()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	words, err := store.GetRunWords(runID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load run words: %v", err)), nil
	}
	hist, err := store.GetRunHistogram(runID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load run histogram: %v", err)), nil
	}
	if len(words) == 0 && len(hist) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("run %s not found", runID)), nil
	}

	jsonData, _ := json.MarshalIndent(runDetail{RunID: runID, Words: words, Histogram: hist}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
