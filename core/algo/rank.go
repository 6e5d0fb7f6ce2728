// Package algo has ranking algorithms over aggregated name data.
package algo

import (
	"cmp"
	"slices"
	"strings"

	"github.com/huangsam/babynames/schema"
)

// truncate returns at most limit items. A limit of zero or less keeps everything.
func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// metricCount returns the count a popularity metric ranks by.
func metricCount(s schema.NameGenderSummary, metric schema.PopularityMetric) int {
	switch metric {
	case schema.FemaleMetric:
		return s.FemaleCount
	case schema.MaleMetric:
		return s.MaleCount
	default:
		return s.Total()
	}
}

// RankPopular sorts summaries by the metric count in descending order, ties broken
// by name, and returns the top 'limit' names. The input slice is not modified.
func RankPopular(summaries []schema.NameGenderSummary, metric schema.PopularityMetric, limit int) []schema.NameGenderSummary {
	ranked := slices.Clone(summaries)
	slices.SortStableFunc(ranked, func(a, b schema.NameGenderSummary) int {
		return cmp.Or(
			cmp.Compare(metricCount(b, metric), metricCount(a, metric)),
			strings.Compare(a.Name, b.Name),
		)
	})
	return truncate(ranked, limit)
}

// thresholdCount returns the count compared against the ambiguity threshold.
func thresholdCount(s schema.NameGenderSummary, basis schema.ThresholdBasis) int {
	if basis == schema.TotalBasis {
		return s.Total()
	}
	return s.FemaleCount
}

// RankAmbiguous keeps summaries whose basis count is strictly greater than minCount,
// sorts them by entropy in descending order, ties broken by name, and returns the
// top 'limit' names.
func RankAmbiguous(summaries []schema.NameGenderSummary, minCount int, basis schema.ThresholdBasis, limit int) []schema.NameGenderSummary {
	ranked := make([]schema.NameGenderSummary, 0, len(summaries))
	for _, s := range summaries {
		if thresholdCount(s, basis) > minCount {
			ranked = append(ranked, s)
		}
	}
	slices.SortStableFunc(ranked, func(a, b schema.NameGenderSummary) int {
		return cmp.Or(
			cmp.Compare(b.Entropy, a.Entropy),
			strings.Compare(a.Name, b.Name),
		)
	})
	return truncate(ranked, limit)
}
