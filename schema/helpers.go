package schema

import (
	"cmp"
	"slices"
	"strings"
)

// compareRecords orders records by name, then year, state and sex.
func compareRecords(a, b Record) int {
	return cmp.Or(
		strings.Compare(a.Name, b.Name),
		cmp.Compare(a.Year, b.Year),
		strings.Compare(a.State, b.State),
		strings.Compare(string(a.Sex), string(b.Sex)),
	)
}

// SortRecordsByName sorts records in place so that equal names are adjacent.
func SortRecordsByName(records []Record) {
	slices.SortStableFunc(records, compareRecords)
}

// IsSortedByName reports whether names never decrease across the slice.
func IsSortedByName(records []Record) bool {
	for i := 1; i < len(records); i++ {
		if records[i].Name < records[i-1].Name {
			return false
		}
	}
	return true
}

// YearSpan returns the smallest range covering every record year.
// The boolean is false when records is empty.
func YearSpan(records []Record) (YearRange, bool) {
	if len(records) == 0 {
		return YearRange{}, false
	}
	span := SingleYear(records[0].Year)
	for _, r := range records[1:] {
		span.Start = min(span.Start, r.Year)
		span.End = max(span.End, r.Year)
	}
	return span, true
}

// SummaryNames returns the names of summaries in order.
func SummaryNames(summaries []NameGenderSummary) []string {
	names := make([]string, len(summaries))
	for i, s := range summaries {
		names[i] = s.Name
	}
	return names
}
