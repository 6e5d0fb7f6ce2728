package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// YearRange is an inclusive span of years.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SingleYear returns a range covering one year.
func SingleYear(year int) YearRange {
	return YearRange{Start: year, End: year}
}

// Contains reports whether year lies within the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Start && year <= r.End
}

// Len returns the number of years in the range.
func (r YearRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// IsZero reports whether the range is unset.
func (r YearRange) IsZero() bool {
	return r.Start == 0 && r.End == 0
}

// Validate returns a RangeError when End is before Start.
func (r YearRange) Validate() error {
	if r.End < r.Start {
		return &RangeError{Start: r.Start, End: r.End}
	}
	return nil
}

func (r YearRange) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ParseYearRange parses "2013" or "1910-2014" into a validated range.
func ParseYearRange(s string) (YearRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return YearRange{}, fmt.Errorf("empty year range")
	}
	startStr, endStr, found := strings.Cut(s, "-")
	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return YearRange{}, fmt.Errorf("invalid year %q: %w", startStr, err)
	}
	if !found {
		return SingleYear(start), nil
	}
	end, err := strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil {
		return YearRange{}, fmt.Errorf("invalid year %q: %w", endStr, err)
	}
	r := YearRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return YearRange{}, err
	}
	return r, nil
}

// ParseYearRanges parses a comma-separated list such as "2013,1945" or "1990-1999,2013".
func ParseYearRanges(s string) ([]YearRange, error) {
	var ranges []YearRange
	for part := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r, err := ParseYearRange(part)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("no years given")
	}
	return ranges, nil
}
