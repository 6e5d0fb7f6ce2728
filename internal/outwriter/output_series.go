package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/parquet"
	"github.com/huangsam/babynames/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSeriesResult outputs the yearly counts of a name, dispatching based on the output format configured.
func PrintSeriesResult(result schema.SeriesResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON series"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesCSV(w, result)
		}, "Wrote CSV series"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.Write(w, parquet.ConvertSeries(result))
		}, "Wrote Parquet series"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeSeriesTable(w, result, cfg); err != nil {
				return err
			}
			return writeFooter(w, duration)
		}, "Wrote table")
	}
	return nil
}

// writeSeriesCSV writes one name,year,count row per point.
func writeSeriesCSV(w io.Writer, result schema.SeriesResult) error {
	return writeCSVWithHeader(w, []string{"name", "year", "count"}, func(cw *csv.Writer) error {
		for _, p := range result.Points {
			if err := cw.Write([]string{result.Name, strconv.Itoa(p.Year), strconv.Itoa(p.Count)}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSeriesTable prints the series in a two-column table.
func writeSeriesTable(w io.Writer, result schema.SeriesResult, cfg *contract.Config) error {
	title := fmt.Sprintf("%s in %s (total %d)", result.Name, result.Years, result.TotalCount)
	if _, err := fmt.Fprintln(w, titleFor("📅", title, cfg)); err != nil {
		return err
	}

	_, intFmt := createFormatters(cfg.Precision)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Year", "Count"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range result.Points {
		data = append(data, []string{strconv.Itoa(p.Year), fmt.Sprintf(intFmt, p.Count)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
