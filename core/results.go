package core

import (
	"context"
	"fmt"
	"os"

	"github.com/huangsam/babynames/core/agg"
	"github.com/huangsam/babynames/core/algo"
	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/outwriter"
	"github.com/huangsam/babynames/schema"
)

// loadRecords reads every record of src and prints the source header unless suppressed.
// Records are sorted by name when the sorted grouping strategy is selected.
func loadRecords(ctx context.Context, cfg *contract.Config, src contract.RecordSource) ([]schema.Record, schema.LoadStats, error) {
	records, stats, err := src.Load(ctx)
	if err != nil {
		backend, location := src.Describe()
		return nil, stats, fmt.Errorf("failed to load %s source %s: %w", backend, location, err)
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogLoadHeader(os.Stderr, cfg, stats)
	}
	if cfg.Grouping == schema.SortedGrouping && !schema.IsSortedByName(records) {
		schema.SortRecordsByName(records)
	}
	return records, stats, nil
}

// windowsOrSpan returns the configured windows, or the dataset span when none are set.
func windowsOrSpan(records []schema.Record, windows []schema.YearRange) []schema.YearRange {
	if len(windows) > 0 {
		return windows
	}
	if span, ok := schema.YearSpan(records); ok {
		return []schema.YearRange{span}
	}
	return nil
}

// popularityFromRecords ranks every metric in every popularity window.
func popularityFromRecords(records []schema.Record, cfg *contract.Config) ([]schema.PopularityResult, error) {
	var results []schema.PopularityResult
	for _, years := range windowsOrSpan(records, cfg.Years) {
		summaries, err := agg.SummarizeByName(records, years, cfg.Grouping)
		if err != nil {
			return nil, err
		}
		for _, metric := range cfg.Metrics {
			results = append(results, schema.PopularityResult{
				Metric: metric,
				Years:  years,
				Names:  algo.RankPopular(summaries, metric, cfg.ResultLimit),
			})
		}
	}
	return results, nil
}

// ambiguityFromRecords ranks entropy in every target window.
func ambiguityFromRecords(records []schema.Record, cfg *contract.Config) ([]schema.AmbiguityResult, error) {
	results := make([]schema.AmbiguityResult, 0, len(cfg.TargetYears))
	for _, years := range cfg.TargetYears {
		summaries, err := agg.SummarizeByName(records, years, cfg.Grouping)
		if err != nil {
			return nil, err
		}
		results = append(results, schema.AmbiguityResult{
			Years:    years,
			MinCount: cfg.MinCount,
			Basis:    cfg.Basis,
			Names:    algo.RankAmbiguous(summaries, cfg.MinCount, cfg.Basis, cfg.ResultLimit),
		})
	}
	return results, nil
}

// buildMatrix builds the year matrix and returns the span it covers.
func buildMatrix(records []schema.Record, cfg *contract.Config) ([]schema.NameYearSeries, schema.YearRange, error) {
	years, ok, err := agg.ResolveMatrixRange(records, cfg.StartYear, cfg.EndYear)
	if err != nil {
		return nil, schema.YearRange{}, err
	}
	if !ok {
		return []schema.NameYearSeries{}, schema.YearRange{}, nil
	}
	matrix, err := agg.BuildMatrix(records, years.Start, years.End, cfg.RangePolicy, cfg.Grouping)
	if err != nil {
		return nil, years, err
	}
	return matrix, years, nil
}

// trendsFromRecords ranks percentage changes for every policy and direction.
func trendsFromRecords(records []schema.Record, cfg *contract.Config) ([]schema.TrendResult, error) {
	matrix, years, err := buildMatrix(records, cfg)
	if err != nil {
		return nil, err
	}
	if len(matrix) > 0 {
		for _, year := range []int{cfg.BaseYear, cfg.CompareYear} {
			if !years.Contains(year) {
				return nil, fmt.Errorf("trend year outside dataset: %w", &schema.RangeError{Year: year, Start: years.Start, End: years.End})
			}
		}
	}

	results := make([]schema.TrendResult, 0, len(cfg.Policies)*len(cfg.Directions))
	for _, policy := range cfg.Policies {
		for _, direction := range cfg.Directions {
			changes := algo.ComputeChanges(matrix, cfg.BaseYear, cfg.CompareYear, direction, policy)
			results = append(results, schema.TrendResult{
				BaseYear:    cfg.BaseYear,
				CompareYear: cfg.CompareYear,
				Policy:      policy,
				Direction:   direction,
				Names:       algo.RankChanges(changes, cfg.ResultLimit),
			})
		}
	}
	return results, nil
}

// seriesFromRecords extracts the non-zero yearly counts of cfg.SeriesName.
func seriesFromRecords(records []schema.Record, cfg *contract.Config) (schema.SeriesResult, error) {
	matrix, years, err := buildMatrix(records, cfg)
	if err != nil {
		return schema.SeriesResult{}, err
	}
	series, found := agg.FindSeries(matrix, cfg.SeriesName)
	if !found {
		return schema.SeriesResult{}, fmt.Errorf("name %q not found in %s (names are case-sensitive)", cfg.SeriesName, years)
	}

	result := schema.SeriesResult{
		Name:       series.Name,
		Years:      years,
		TotalCount: series.TotalCount,
		Points:     []schema.YearCount{},
	}
	for i, count := range series.CountsByYear {
		if count > 0 {
			result.Points = append(result.Points, schema.YearCount{Year: series.StartYear + i, Count: count})
		}
	}
	return result, nil
}

// GetPopularResults loads the source and ranks names by popularity.
func GetPopularResults(ctx context.Context, cfg *contract.Config, src contract.RecordSource) ([]schema.PopularityResult, error) {
	records, _, err := loadRecords(ctx, cfg, src)
	if err != nil {
		return nil, err
	}
	return popularityFromRecords(records, cfg)
}

// GetAmbiguousResults loads the source and ranks names by gender ambiguity.
func GetAmbiguousResults(ctx context.Context, cfg *contract.Config, src contract.RecordSource) ([]schema.AmbiguityResult, error) {
	records, _, err := loadRecords(ctx, cfg, src)
	if err != nil {
		return nil, err
	}
	return ambiguityFromRecords(records, cfg)
}

// GetTrendResults loads the source and ranks names by percentage change.
func GetTrendResults(ctx context.Context, cfg *contract.Config, src contract.RecordSource) ([]schema.TrendResult, error) {
	records, _, err := loadRecords(ctx, cfg, src)
	if err != nil {
		return nil, err
	}
	return trendsFromRecords(records, cfg)
}

// GetSeriesResult loads the source and returns the yearly counts of cfg.SeriesName.
func GetSeriesResult(ctx context.Context, cfg *contract.Config, src contract.RecordSource) (schema.SeriesResult, error) {
	records, _, err := loadRecords(ctx, cfg, src)
	if err != nil {
		return schema.SeriesResult{}, err
	}
	return seriesFromRecords(records, cfg)
}

// GetReport loads the source once and computes every report section.
func GetReport(ctx context.Context, cfg *contract.Config, src contract.RecordSource) (schema.Report, error) {
	records, _, err := loadRecords(ctx, cfg, src)
	if err != nil {
		return schema.Report{}, err
	}

	var report schema.Report
	if report.Popularity, err = popularityFromRecords(records, cfg); err != nil {
		return schema.Report{}, err
	}
	if report.Ambiguity, err = ambiguityFromRecords(records, cfg); err != nil {
		return schema.Report{}, err
	}
	if report.Trends, err = trendsFromRecords(records, cfg); err != nil {
		return schema.Report{}, err
	}
	return report, nil
}
