package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/babynames/core"
	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	src     contract.RecordSource
}

// rankedNames is a ranked summary list with presentation data.
type rankedNames struct {
	Metric   schema.PopularityMetric `json:"metric,omitempty"`
	Years    schema.YearRange        `json:"years"`
	MinCount *int                    `json:"min_count,omitempty"`
	Names    []schema.RankedSummary  `json:"names"`
}

// rankedTrend is a ranked change list with presentation data.
type rankedTrend struct {
	BaseYear    int                    `json:"base_year"`
	CompareYear int                    `json:"compare_year"`
	Policy      schema.ChangePolicy    `json:"policy"`
	Direction   schema.ChangeDirection `json:"direction"`
	Names       []schema.RankedChange  `json:"names"`
}

// textResult marshals v as indented JSON.
func textResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPopularNames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	if err := contract.RevalidateRanking(cfg, request.GetString("years", ""), "", request.GetString("metric", ""), ""); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid popularity parameters: %v", err)), nil
	}

	results, err := core.GetPopularResults(core.WithSuppressHeader(ctx), cfg, h.src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("popularity analysis failed: %v", err)), nil
	}

	enriched := make([]rankedNames, 0, len(results))
	for _, res := range results {
		enriched = append(enriched, rankedNames{Metric: res.Metric, Years: res.Years, Names: schema.EnrichSummaries(res.Names)})
	}
	return textResult(enriched)
}

func (h *toolHandler) handleGetAmbiguousNames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	cfg.MinCount = request.GetInt("min_count", cfg.MinCount)
	if err := contract.RevalidateRanking(cfg, "", request.GetString("target_years", ""), "", request.GetString("basis", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid ambiguity parameters: %v", err)), nil
	}

	results, err := core.GetAmbiguousResults(core.WithSuppressHeader(ctx), cfg, h.src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ambiguity analysis failed: %v", err)), nil
	}

	enriched := make([]rankedNames, 0, len(results))
	for _, res := range results {
		minCount := res.MinCount
		enriched = append(enriched, rankedNames{Years: res.Years, MinCount: &minCount, Names: schema.EnrichSummaries(res.Names)})
	}
	return textResult(enriched)
}

func (h *toolHandler) handleGetNameTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	cfg.BaseYear = request.GetInt("base_year", cfg.BaseYear)
	cfg.CompareYear = request.GetInt("compare_year", cfg.CompareYear)
	if err := contract.RevalidateTrends(cfg, request.GetString("policy", ""), request.GetString("direction", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid trend parameters: %v", err)), nil
	}

	results, err := core.GetTrendResults(core.WithSuppressHeader(ctx), cfg, h.src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend analysis failed: %v", err)), nil
	}

	enriched := make([]rankedTrend, 0, len(results))
	for _, res := range results {
		enriched = append(enriched, rankedTrend{
			BaseYear:    res.BaseYear,
			CompareYear: res.CompareYear,
			Policy:      res.Policy,
			Direction:   res.Direction,
			Names:       schema.EnrichChanges(res.Names),
		})
	}
	return textResult(enriched)
}

func (h *toolHandler) handleGetNameSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SeriesName = request.GetString("name", "")
	if err := contract.RevalidateSeries(cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid series parameters: %v", err)), nil
	}

	result, err := core.GetSeriesResult(core.WithSuppressHeader(ctx), cfg, h.src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("series analysis failed: %v", err)), nil
	}
	return textResult(result)
}

func (h *toolHandler) handleGetDatasetStatus(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := core.GetDatasetStatus(ctx, h.baseCfg.Clone(), h.src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("dataset status failed: %v", err)), nil
	}
	return textResult(status)
}
