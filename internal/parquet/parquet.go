// Package parquet provides data structures and functions for moving baby name
// records and ranked results in and out of Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/babynames/schema"
	"github.com/parquet-go/parquet-go"
)

// readBatchSize is the number of rows decoded per Read call.
const readBatchSize = 4096

// Result sections stored in the ResultRow.Section column.
const (
	PopularitySection = "popularity"
	AmbiguitySection  = "ambiguity"
	TrendsSection     = "trends"
	SeriesSection     = "series"
)

// RecordRow is one source record. Files made of these rows can be loaded back
// as a parquet source.
type RecordRow struct {
	State string `parquet:"state,snappy,dict"`
	Sex   string `parquet:"sex,snappy,dict"`
	Year  int32  `parquet:"year,snappy"`
	Name  string `parquet:"name,snappy"`
	Count int64  `parquet:"count,snappy"`
}

// ResultRow is one entry of a ranked result. Columns that do not apply to the
// section are left null.
type ResultRow struct {
	// Section is one of popularity, ambiguity, trends or series
	Section string `parquet:"section,snappy,dict"`

	// Category distinguishes lists within a section (metric, year range, policy/direction or name)
	Category string `parquet:"category,snappy,dict"`

	Rank int32  `parquet:"rank,snappy"`
	Name string `parquet:"name,snappy"`

	FemaleCount *int64   `parquet:"female_count,optional,snappy"`
	MaleCount   *int64   `parquet:"male_count,optional,snappy"`
	Total       *int64   `parquet:"total,optional,snappy"`
	Entropy     *float64 `parquet:"entropy,optional,snappy"`
	Label       *string  `parquet:"label,optional,snappy"`

	BaseCount    *int64   `parquet:"base_count,optional,snappy"`
	CompareCount *int64   `parquet:"compare_count,optional,snappy"`
	Percent      *float64 `parquet:"percent,optional,snappy"`

	// Year is only set for series rows
	Year *int32 `parquet:"year,optional,snappy"`
}

// Write writes rows to w using the schema inferred from T.
func Write[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteFile creates outputPath and writes rows to it.
func WriteFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// ReadFile reads every row of a Parquet file whose schema matches T.
func ReadFile[T any](inputPath string) ([]T, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[T](file)
	defer func() { _ = reader.Close() }()

	rows := make([]T, 0, reader.NumRows())
	buf := make([]T, readBatchSize)
	for {
		n, err := reader.Read(buf)
		rows = append(rows, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet file %s: %w", inputPath, err)
		}
		if n == 0 {
			break
		}
	}
	return rows, nil
}

// WriteRecordsParquet writes source records to a Parquet file.
func WriteRecordsParquet(records []schema.Record, outputPath string) error {
	return WriteFile(ConvertRecords(records), outputPath)
}

// ReadRecordsParquet reads source records from a Parquet file written by WriteRecordsParquet.
func ReadRecordsParquet(inputPath string) ([]schema.Record, error) {
	rows, err := ReadFile[RecordRow](inputPath)
	if err != nil {
		return nil, err
	}
	records := make([]schema.Record, len(rows))
	for i, row := range rows {
		records[i] = schema.Record{
			State: row.State,
			Sex:   schema.Sex(row.Sex),
			Year:  int(row.Year),
			Name:  row.Name,
			Count: int(row.Count),
		}
	}
	return records, nil
}

// ConvertRecords converts schema records to RecordRow for Parquet export.
func ConvertRecords(records []schema.Record) []RecordRow {
	result := make([]RecordRow, len(records))
	for i, r := range records {
		result[i] = RecordRow{
			State: r.State,
			Sex:   string(r.Sex),
			Year:  int32(r.Year),
			Name:  r.Name,
			Count: int64(r.Count),
		}
	}
	return result
}

func ptr[T any](v T) *T { return &v }

// summaryRows converts ranked summaries of a single list.
func summaryRows(section, category string, names []schema.NameGenderSummary) []ResultRow {
	rows := make([]ResultRow, 0, len(names))
	for _, s := range schema.EnrichSummaries(names) {
		rows = append(rows, ResultRow{
			Section:     section,
			Category:    category,
			Rank:        int32(s.Rank),
			Name:        s.Name,
			FemaleCount: ptr(int64(s.FemaleCount)),
			MaleCount:   ptr(int64(s.MaleCount)),
			Total:       ptr(int64(s.Total)),
			Entropy:     ptr(s.Entropy),
			Label:       ptr(s.Label),
		})
	}
	return rows
}

// ConvertPopularity converts popularity results to ResultRow.
func ConvertPopularity(results []schema.PopularityResult) []ResultRow {
	var rows []ResultRow
	for _, res := range results {
		rows = append(rows, summaryRows(PopularitySection, string(res.Metric), res.Names)...)
	}
	return rows
}

// ConvertAmbiguity converts ambiguity results to ResultRow.
func ConvertAmbiguity(results []schema.AmbiguityResult) []ResultRow {
	var rows []ResultRow
	for _, res := range results {
		rows = append(rows, summaryRows(AmbiguitySection, res.Years.String(), res.Names)...)
	}
	return rows
}

// ConvertTrends converts trend results to ResultRow.
func ConvertTrends(results []schema.TrendResult) []ResultRow {
	var rows []ResultRow
	for _, res := range results {
		category := fmt.Sprintf("%s/%s", res.Policy, res.Direction)
		for _, c := range schema.EnrichChanges(res.Names) {
			rows = append(rows, ResultRow{
				Section:      TrendsSection,
				Category:     category,
				Rank:         int32(c.Rank),
				Name:         c.Name,
				BaseCount:    ptr(int64(c.BaseCount)),
				CompareCount: ptr(int64(c.CompareCount)),
				Percent:      ptr(c.Percent),
			})
		}
	}
	return rows
}

// ConvertSeries converts a name series to ResultRow, one row per year.
func ConvertSeries(res schema.SeriesResult) []ResultRow {
	rows := make([]ResultRow, 0, len(res.Points))
	for i, p := range res.Points {
		rows = append(rows, ResultRow{
			Section:  SeriesSection,
			Category: res.Name,
			Rank:     int32(i + 1),
			Name:     res.Name,
			Total:    ptr(int64(p.Count)),
			Year:     ptr(int32(p.Year)),
		})
	}
	return rows
}

// ConvertReport flattens every section of a report into ResultRow.
func ConvertReport(report schema.Report) []ResultRow {
	rows := ConvertPopularity(report.Popularity)
	rows = append(rows, ConvertAmbiguity(report.Ambiguity)...)
	return append(rows, ConvertTrends(report.Trends)...)
}
