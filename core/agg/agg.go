// Package agg has aggregation logic for baby name records.
package agg

import (
	"fmt"
	"slices"
	"strings"

	"github.com/huangsam/babynames/schema"
)

// genderCounts accumulates the female and male totals of one name.
type genderCounts struct {
	female int
	male   int
}

// add counts a record toward the matching sex. Unknown sexes contribute nothing.
func (g *genderCounts) add(r schema.Record) {
	switch r.Sex {
	case schema.Female:
		g.female += r.Count
	case schema.Male:
		g.male += r.Count
	}
}

// summary converts the accumulator into a NameGenderSummary with its entropy.
func (g genderCounts) summary(name string) schema.NameGenderSummary {
	return schema.NameGenderSummary{
		Name:        name,
		FemaleCount: g.female,
		MaleCount:   g.male,
		Entropy:     schema.BinaryEntropy(g.female, g.male),
	}
}

// AggregateByName merges records sharing a name within years into one summary per name.
// Records are grouped with a map so input order does not matter. The output is sorted
// by name and is empty, never nil, when no record falls in years.
func AggregateByName(records []schema.Record, years schema.YearRange) []schema.NameGenderSummary {
	grouped := make(map[string]*genderCounts)
	for _, r := range records {
		if !years.Contains(r.Year) {
			continue
		}
		acc, ok := grouped[r.Name]
		if !ok {
			acc = &genderCounts{}
			grouped[r.Name] = acc
		}
		acc.add(r)
	}

	summaries := make([]schema.NameGenderSummary, 0, len(grouped))
	for name, acc := range grouped {
		summaries = append(summaries, acc.summary(name))
	}
	slices.SortFunc(summaries, func(a, b schema.NameGenderSummary) int {
		return strings.Compare(a.Name, b.Name)
	})
	return summaries
}

// MergeSortedByName is the single pass alternative to AggregateByName. It requires
// records sorted by name and returns an UnsortedInputError otherwise. The last group
// is flushed after the scan regardless of how many records it holds.
func MergeSortedByName(records []schema.Record, years schema.YearRange) ([]schema.NameGenderSummary, error) {
	summaries := make([]schema.NameGenderSummary, 0)

	var (
		current string
		acc     genderCounts
		open    bool
	)
	for i, r := range records {
		if i > 0 && r.Name < records[i-1].Name {
			return nil, &schema.UnsortedInputError{Index: i, Previous: records[i-1].Name, Current: r.Name}
		}
		if !years.Contains(r.Year) {
			continue
		}
		if open && r.Name != current {
			summaries = append(summaries, acc.summary(current))
			acc = genderCounts{}
		}
		current, open = r.Name, true
		acc.add(r)
	}
	if open {
		summaries = append(summaries, acc.summary(current))
	}
	return summaries, nil
}

// SummarizeByName dispatches to the aggregation matching strategy.
func SummarizeByName(records []schema.Record, years schema.YearRange, strategy schema.GroupingStrategy) ([]schema.NameGenderSummary, error) {
	switch strategy {
	case schema.SortedGrouping:
		return MergeSortedByName(records, years)
	case schema.HashGrouping, "":
		return AggregateByName(records, years), nil
	default:
		return nil, fmt.Errorf("unknown grouping strategy %q", strategy)
	}
}
