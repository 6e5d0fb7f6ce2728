package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/huangsam/babynames/internal/contract"
	mcp_internal "github.com/huangsam/babynames/internal/mcp"
	"github.com/huangsam/babynames/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []schema.Record {
	return []schema.Record{
		{State: "CA", Sex: schema.Female, Year: 1980, Name: "Emma", Count: 10},
		{State: "CA", Sex: schema.Female, Year: 2014, Name: "Emma", Count: 30},
		{State: "CA", Sex: schema.Male, Year: 2014, Name: "Liam", Count: 50},
		{State: "CA", Sex: schema.Female, Year: 2014, Name: "Alex", Count: 10},
		{State: "NY", Sex: schema.Male, Year: 2014, Name: "Alex", Count: 8},
	}
}

func baseConfig() *contract.Config {
	return &contract.Config{
		SourceBackend: schema.CSVSource,
		Grouping:      schema.HashGrouping,
		RangePolicy:   schema.SkipOutOfRange,
		TargetYears:   []schema.YearRange{schema.SingleYear(2014)},
		Metrics:       schema.AllPopularityMetrics,
		MinCount:      5,
		Basis:         schema.FemaleBasis,
		BaseYear:      1980,
		CompareYear:   2014,
		Policies:      schema.AllChangePolicies,
		Directions:    schema.AllChangeDirections,
		ResultLimit:   5,
	}
}

func callTool(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(baseConfig(), contract.NewStaticRecordSource(testRecords()))
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func resultText(res *mcp.CallToolResult) string {
	return res.Content[0].(mcp.TextContent).Text
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	t.Run("get_name_series missing name", func(t *testing.T) {
		res := callTool(t, "get_name_series", map[string]any{"name": "  "})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, resultText(res), "a name is required")
	})

	t.Run("get_name_trends invalid policy", func(t *testing.T) {
		res := callTool(t, "get_name_trends", map[string]any{"policy": "lenient"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "invalid --policy value")
	})

	t.Run("get_popular_names invalid years", func(t *testing.T) {
		res := callTool(t, "get_popular_names", map[string]any{"years": "2014-1980"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "invalid popularity parameters")
	})

	t.Run("get_name_series unknown name", func(t *testing.T) {
		res := callTool(t, "get_name_series", map[string]any{"name": "emma"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "case-sensitive")
	})
}

func TestMCPServerHandlers_Results(t *testing.T) {
	t.Run("get_popular_names", func(t *testing.T) {
		res := callTool(t, "get_popular_names", map[string]any{"metric": "male", "limit": 1.0})
		require.False(t, res.IsError, resultText(res))

		var payload []struct {
			Metric string                 `json:"metric"`
			Names  []schema.RankedSummary `json:"names"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &payload))
		require.Len(t, payload, 1)
		assert.Equal(t, "male", payload[0].Metric)
		require.Len(t, payload[0].Names, 1)
		assert.Equal(t, "Liam", payload[0].Names[0].Name)
		assert.Equal(t, 1, payload[0].Names[0].Rank)
	})

	t.Run("get_ambiguous_names", func(t *testing.T) {
		res := callTool(t, "get_ambiguous_names", map[string]any{"target_years": "2014"})
		require.False(t, res.IsError, resultText(res))
		assert.Contains(t, resultText(res), `"label": "Unisex"`)
	})

	t.Run("get_name_trends", func(t *testing.T) {
		res := callTool(t, "get_name_trends", map[string]any{"policy": "inclusive", "direction": "increase"})
		require.False(t, res.IsError, resultText(res))

		var payload []struct {
			Names []schema.RankedChange `json:"names"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &payload))
		require.Len(t, payload, 1)
		assert.Equal(t, "Liam", payload[0].Names[0].Name)
		assert.InDelta(t, 5000.0, payload[0].Names[0].Percent, 1e-9)
	})

	t.Run("get_name_series", func(t *testing.T) {
		res := callTool(t, "get_name_series", map[string]any{"name": "Emma"})
		require.False(t, res.IsError, resultText(res))

		var series schema.SeriesResult
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &series))
		assert.Equal(t, 40, series.TotalCount)
		assert.Len(t, series.Points, 2)
	})

	t.Run("get_dataset_status", func(t *testing.T) {
		res := callTool(t, "get_dataset_status", nil)
		require.False(t, res.IsError, resultText(res))
		assert.Contains(t, resultText(res), `"distinct_names": 3`)
	})
}
