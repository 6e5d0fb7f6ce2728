package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/parquet"
	"github.com/huangsam/babynames/schema"
)

// PrintReport outputs every report section, dispatching based on the output format configured.
func PrintReport(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	done, err := writeFormatted(cfg, report, func() []parquet.ResultRow { return parquet.ConvertReport(report) })
	if done {
		return err
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if err := writeReportText(w, report, cfg); err != nil {
			return err
		}
		return writeFooter(w, duration)
	}, "Wrote report")
}

// writeReportText writes the popularity, ambiguity and trend sections in order.
func writeReportText(w io.Writer, report schema.Report, cfg *contract.Config) error {
	sections := []struct {
		heading string
		write   func() error
	}{
		{"POPULARITY", func() error { return writePopularityTables(w, report.Popularity, cfg) }},
		{"AMBIGUITY", func() error { return writeAmbiguityTables(w, report.Ambiguity, cfg) }},
		{"TRENDS", func() error { return writeTrendTables(w, report.Trends, cfg) }},
	}
	for _, section := range sections {
		if _, err := fmt.Fprintf(w, "== %s ==\n\n", section.heading); err != nil {
			return err
		}
		if err := section.write(); err != nil {
			return err
		}
	}
	return nil
}
