package agg

import (
	"fmt"
	"slices"
	"strings"

	"github.com/huangsam/babynames/schema"
)

// ResolveMatrixRange validates startYear..endYear. When both are zero the range is
// derived from the records instead; ok is false if there are no records to derive from.
func ResolveMatrixRange(records []schema.Record, startYear, endYear int) (years schema.YearRange, ok bool, err error) {
	if startYear == 0 && endYear == 0 {
		years, ok = schema.YearSpan(records)
		return years, ok, nil
	}
	years = schema.YearRange{Start: startYear, End: endYear}
	if err := years.Validate(); err != nil {
		return schema.YearRange{}, false, err
	}
	return years, true, nil
}

// bucketIndex maps a year to its slot in a series spanning years.
// A false result means the record is dropped.
func bucketIndex(year int, years schema.YearRange, policy schema.RangePolicy) (int, bool, error) {
	if years.Contains(year) {
		return year - years.Start, true, nil
	}
	switch policy {
	case schema.ClipOutOfRange:
		if year < years.Start {
			return 0, true, nil
		}
		return years.Len() - 1, true, nil
	case schema.ErrorOutOfRange:
		return 0, false, &schema.RangeError{Year: year, Start: years.Start, End: years.End}
	default:
		return 0, false, nil
	}
}

func newSeries(name string, years schema.YearRange) *schema.NameYearSeries {
	return &schema.NameYearSeries{
		Name:         name,
		StartYear:    years.Start,
		CountsByYear: make([]int, years.Len()),
	}
}

// BuildYearMatrix merges records by name, ignoring sex, into one series per name
// spanning startYear..endYear. Records outside the span are handled per policy.
// The output is sorted by name.
func BuildYearMatrix(records []schema.Record, startYear, endYear int, policy schema.RangePolicy) ([]schema.NameYearSeries, error) {
	years, ok, err := ResolveMatrixRange(records, startYear, endYear)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []schema.NameYearSeries{}, nil
	}

	grouped := make(map[string]*schema.NameYearSeries)
	for _, r := range records {
		idx, keep, err := bucketIndex(r.Year, years, policy)
		if err != nil {
			return nil, fmt.Errorf("building year matrix for %q: %w", r.Name, err)
		}
		if !keep {
			continue
		}
		series, found := grouped[r.Name]
		if !found {
			series = newSeries(r.Name, years)
			grouped[r.Name] = series
		}
		series.CountsByYear[idx] += r.Count
		series.TotalCount += r.Count
	}

	matrix := make([]schema.NameYearSeries, 0, len(grouped))
	for _, series := range grouped {
		matrix = append(matrix, *series)
	}
	slices.SortFunc(matrix, func(a, b schema.NameYearSeries) int {
		return strings.Compare(a.Name, b.Name)
	})
	return matrix, nil
}

// BuildYearMatrixSorted is the single pass alternative to BuildYearMatrix for records
// sorted by name. The last series is flushed after the scan.
func BuildYearMatrixSorted(records []schema.Record, startYear, endYear int, policy schema.RangePolicy) ([]schema.NameYearSeries, error) {
	years, ok, err := ResolveMatrixRange(records, startYear, endYear)
	if err != nil {
		return nil, err
	}
	matrix := make([]schema.NameYearSeries, 0)
	if !ok {
		return matrix, nil
	}

	var current *schema.NameYearSeries
	for i, r := range records {
		if i > 0 && r.Name < records[i-1].Name {
			return nil, &schema.UnsortedInputError{Index: i, Previous: records[i-1].Name, Current: r.Name}
		}
		idx, keep, err := bucketIndex(r.Year, years, policy)
		if err != nil {
			return nil, fmt.Errorf("building year matrix for %q: %w", r.Name, err)
		}
		if !keep {
			continue
		}
		if current != nil && current.Name != r.Name {
			matrix = append(matrix, *current)
			current = nil
		}
		if current == nil {
			current = newSeries(r.Name, years)
		}
		current.CountsByYear[idx] += r.Count
		current.TotalCount += r.Count
	}
	if current != nil {
		matrix = append(matrix, *current)
	}
	return matrix, nil
}

// BuildMatrix dispatches to the matrix builder matching strategy.
func BuildMatrix(records []schema.Record, startYear, endYear int, policy schema.RangePolicy, strategy schema.GroupingStrategy) ([]schema.NameYearSeries, error) {
	switch strategy {
	case schema.SortedGrouping:
		return BuildYearMatrixSorted(records, startYear, endYear, policy)
	case schema.HashGrouping, "":
		return BuildYearMatrix(records, startYear, endYear, policy)
	default:
		return nil, fmt.Errorf("unknown grouping strategy %q", strategy)
	}
}

// FindSeries returns the series for name, or false when the name is absent.
// matrix must be sorted by name.
func FindSeries(matrix []schema.NameYearSeries, name string) (schema.NameYearSeries, bool) {
	idx, found := slices.BinarySearchFunc(matrix, name, func(s schema.NameYearSeries, target string) int {
		return strings.Compare(s.Name, target)
	})
	if !found {
		return schema.NameYearSeries{}, false
	}
	return matrix[idx], true
}
