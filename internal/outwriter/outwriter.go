// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WritePopularity prints popularity rankings using the configured output format.
func (ow *OutWriter) WritePopularity(results []schema.PopularityResult, cfg *contract.Config, duration time.Duration) error {
	return PrintPopularityResults(results, cfg, duration)
}

// WriteAmbiguity prints ambiguity rankings using the configured output format.
func (ow *OutWriter) WriteAmbiguity(results []schema.AmbiguityResult, cfg *contract.Config, duration time.Duration) error {
	return PrintAmbiguityResults(results, cfg, duration)
}

// WriteTrends prints percentage change rankings using the configured output format.
func (ow *OutWriter) WriteTrends(results []schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return PrintTrendResults(results, cfg, duration)
}

// WriteSeries prints the yearly counts of one name using the configured output format.
func (ow *OutWriter) WriteSeries(result schema.SeriesResult, cfg *contract.Config, duration time.Duration) error {
	return PrintSeriesResult(result, cfg, duration)
}

// WriteReport prints every report section using the configured output format.
func (ow *OutWriter) WriteReport(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	return PrintReport(report, cfg, duration)
}

// WriteDatasetStatus prints dataset statistics using the configured output format.
func (ow *OutWriter) WriteDatasetStatus(status schema.DatasetStatus, cfg *contract.Config) error {
	return PrintDatasetStatus(status, cfg)
}
