// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the babynames MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, src contract.RecordSource) *server.MCPServer {
	s := server.NewMCPServer(
		"Baby Names Statistics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		src:     src,
	}

	// --- 1. Tool: get_popular_names ---
	s.AddTool(mcp.NewTool("get_popular_names",
		mcp.WithDescription("Rank baby names by total, female or male births."),
		mcp.WithString("years", mcp.Description("Comma-separated years or ranges (e.g., '1910-1919,2014'). Defaults to the whole dataset.")),
		mcp.WithString("metric", mcp.Description("Comma-separated metrics (total, female, male). Defaults to all.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetPopularNames)

	// --- 2. Tool: get_ambiguous_names ---
	s.AddTool(mcp.NewTool("get_ambiguous_names",
		mcp.WithDescription("Rank baby names by gender ambiguity (binary entropy of female and male births)."),
		mcp.WithString("target_years", mcp.Description("Comma-separated years or ranges (e.g., '2013,1945').")),
		mcp.WithNumber("min_count", mcp.Description("Only names whose basis count exceeds this value are ranked.")),
		mcp.WithString("basis", mcp.Description("Count compared against min_count. Defaults to 'female'."), mcp.Enum("female", "total")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results.")),
	), h.handleGetAmbiguousNames)

	// --- 3. Tool: get_name_trends ---
	s.AddTool(mcp.NewTool("get_name_trends",
		mcp.WithDescription("Rank baby names by percentage change in births between two years."),
		mcp.WithNumber("base_year", mcp.Description("The base year for comparison.")),
		mcp.WithNumber("compare_year", mcp.Description("The year compared against the base year.")),
		mcp.WithString("policy", mcp.Description("Zero denominator handling (strict, inclusive). Defaults to both.")),
		mcp.WithString("direction", mcp.Description("Change direction (increase, decrease). Defaults to both.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results.")),
	), h.handleGetNameTrends)

	// --- 4. Tool: get_name_series ---
	s.AddTool(mcp.NewTool("get_name_series",
		mcp.WithDescription("Return the yearly births of a single name. Names are case-sensitive."),
		mcp.WithString("name", mcp.Description("The name to look up (e.g., 'Emma')."), mcp.Required()),
	), h.handleGetNameSeries)

	// --- 5. Tool: get_dataset_status ---
	s.AddTool(mcp.NewTool("get_dataset_status",
		mcp.WithDescription("Summarize the loaded dataset: records, names, states, years and births per sex."),
	), h.handleGetDatasetStatus)

	return s
}

// StartMCPServer starts the babynames MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, src contract.RecordSource) error {
	s := NewMCPServer(baseCfg, src)
	return server.ServeStdio(s)
}
