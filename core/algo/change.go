package algo

import (
	"cmp"
	"slices"
	"strings"

	"github.com/huangsam/babynames/schema"
)

// PercentChange computes the change between a base and a comparison count.
// An increase is relative to the base count and a decrease is relative to the
// comparison count. When that denominator is zero the strict policy returns 0 and
// reports the value as excluded, while the inclusive policy divides by count+1.
func PercentChange(base, compare int, direction schema.ChangeDirection, policy schema.ChangePolicy) (percent float64, excluded bool) {
	numerator, denominator := compare-base, base
	if direction == schema.Decrease {
		numerator, denominator = base-compare, compare
	}
	if denominator == 0 {
		if policy != schema.InclusivePolicy {
			return 0, true
		}
		denominator = 1
	}
	return float64(numerator) / float64(denominator) * 100.0, false
}

// ComputeChanges computes the percentage change of every series between baseYear
// and compareYear. Years outside a series count as zero.
func ComputeChanges(matrix []schema.NameYearSeries, baseYear, compareYear int, direction schema.ChangeDirection, policy schema.ChangePolicy) []schema.ChangeResult {
	changes := make([]schema.ChangeResult, 0, len(matrix))
	for _, series := range matrix {
		base, compare := series.CountIn(baseYear), series.CountIn(compareYear)
		percent, excluded := PercentChange(base, compare, direction, policy)
		changes = append(changes, schema.ChangeResult{
			Name:         series.Name,
			BaseCount:    base,
			CompareCount: compare,
			Percent:      percent,
			Excluded:     excluded,
		})
	}
	return changes
}

// RankChanges drops excluded results, sorts the rest by percentage in descending
// order, ties broken by name, and returns the top 'limit' names.
func RankChanges(changes []schema.ChangeResult, limit int) []schema.ChangeResult {
	ranked := make([]schema.ChangeResult, 0, len(changes))
	for _, c := range changes {
		if !c.Excluded {
			ranked = append(ranked, c)
		}
	}
	slices.SortStableFunc(ranked, func(a, b schema.ChangeResult) int {
		return cmp.Or(
			cmp.Compare(b.Percent, a.Percent),
			strings.Compare(a.Name, b.Name),
		)
	})
	return truncate(ranked, limit)
}
