// Package core has core logic for loading, ranking and reporting baby name statistics.
package core

import (
	"context"
	"time"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/outwriter"
)

// ExecutorFunc defines the function signature for executing the ranking commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, src contract.RecordSource) error

// ExecutePopular ranks names by total, female and male births and prints the results.
// It serves as the main entry point for the 'popular' command.
func ExecutePopular(ctx context.Context, cfg *contract.Config, src contract.RecordSource) error {
	start := time.Now()
	results, err := GetPopularResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WritePopularity(results, cfg, time.Since(start))
}

// ExecuteAmbiguous ranks names by gender ambiguity and prints the results.
// It serves as the main entry point for the 'ambiguous' command.
func ExecuteAmbiguous(ctx context.Context, cfg *contract.Config, src contract.RecordSource) error {
	start := time.Now()
	results, err := GetAmbiguousResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteAmbiguity(results, cfg, time.Since(start))
}

// ExecuteTrends ranks names by percentage change between two years and prints the results.
// It serves as the main entry point for the 'trends' command.
func ExecuteTrends(ctx context.Context, cfg *contract.Config, src contract.RecordSource) error {
	start := time.Now()
	results, err := GetTrendResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTrends(results, cfg, time.Since(start))
}

// ExecuteSeries prints the yearly counts of cfg.SeriesName.
func ExecuteSeries(ctx context.Context, cfg *contract.Config, src contract.RecordSource) error {
	start := time.Now()
	result, err := GetSeriesResult(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSeries(result, cfg, time.Since(start))
}

// ExecuteReport prints the popularity, ambiguity and trend sections from a single load.
func ExecuteReport(ctx context.Context, cfg *contract.Config, src contract.RecordSource) error {
	start := time.Now()
	report, err := GetReport(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteReport(report, cfg, time.Since(start))
}
