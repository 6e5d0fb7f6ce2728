package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyRange describes a year range that matched no records.
// Aggregation returns an empty slice in that case; commands use this to report it.
var ErrEmptyRange = errors.New("no records in requested year range")

// MalformedRecordError is returned when a source line cannot be parsed into a Record.
type MalformedRecordError struct {
	Source string
	Line   int
	Fields []string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at %s:%d (%s): %q", e.Source, e.Line, e.Reason, strings.Join(e.Fields, ","))
}

// UnsortedInputError is returned by the sorted merge when names are not non-decreasing.
type UnsortedInputError struct {
	Index    int
	Previous string
	Current  string
}

func (e *UnsortedInputError) Error() string {
	return fmt.Sprintf("records are not sorted by name at index %d: %q after %q", e.Index, e.Current, e.Previous)
}

// RangeError is returned for an invalid year range or a year outside of it.
type RangeError struct {
	Year  int
	Start int
	End   int
}

func (e *RangeError) Error() string {
	if e.End < e.Start {
		return fmt.Sprintf("invalid year range %d-%d: end is before start", e.Start, e.End)
	}
	return fmt.Sprintf("year %d is outside range %d-%d", e.Year, e.Start, e.End)
}
