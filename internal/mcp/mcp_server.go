// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/wikistat/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the wikistat MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Wikistat Archive Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_archives ---
	s.AddTool(mcp.NewTool("analyze_archives",
		mcp.WithDescription("Parse wiki dump archives and return the top title and text words with size and year histograms."),
		mcp.WithString("inputs", mcp.Description("Comma separated archive paths (.xml, .bz2, .gz, .zst, .lz4). Defaults to the configured inputs.")),
		mcp.WithNumber("threads", mcp.Description("Thread budget between 1 and 32.")),
		mcp.WithNumber("limit", mcp.Description("Number of ranked words per section. Defaults to 300.")),
	), h.handleAnalyzeArchives)

	// --- 2. Tool: list_runs ---
	s.AddTool(mcp.NewTool("list_runs",
		mcp.WithDescription("List recorded runs from the history store, newest first."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of runs to return. Defaults to 20.")),
	), h.handleListRuns)

	// --- 3. Tool: get_run ---
	s.AddTool(mcp.NewTool("get_run",
		mcp.WithDescription("Return the ranked words and histograms stored for one recorded run."),
		mcp.WithString("run_id", mcp.Description("The run ID reported by list_runs."), mcp.Required()),
	), h.handleGetRun)

	return s
}

// StartMCPServer starts the wikistat MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
