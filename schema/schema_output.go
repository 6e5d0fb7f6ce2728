package schema

// Ambiguity label values.
const (
	UnisexLabel  = "Unisex"
	LeaningLabel = "Leaning"
	SkewedLabel  = "Skewed"
	SingleLabel  = "Single"
)

// RankedSummary adds presentation data to a NameGenderSummary.
type RankedSummary struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	Total int    `json:"total"`
	NameGenderSummary
}

// RankedChange adds presentation data to a ChangeResult.
type RankedChange struct {
	Rank int `json:"rank"`
	ChangeResult
}

// PopularityResult is a ranked popularity list for one metric.
type PopularityResult struct {
	Metric PopularityMetric    `json:"metric"`
	Years  YearRange           `json:"years"`
	Names  []NameGenderSummary `json:"names"`
}

// AmbiguityResult is a ranked ambiguity list for one year range.
type AmbiguityResult struct {
	Years    YearRange           `json:"years"`
	MinCount int                 `json:"min_count"`
	Basis    ThresholdBasis      `json:"basis"`
	Names    []NameGenderSummary `json:"names"`
}

// TrendResult is a ranked percentage change list for one policy and direction.
type TrendResult struct {
	BaseYear    int             `json:"base_year"`
	CompareYear int             `json:"compare_year"`
	Policy      ChangePolicy    `json:"policy"`
	Direction   ChangeDirection `json:"direction"`
	Names       []ChangeResult  `json:"names"`
}

// SeriesResult is the per-year breakdown of a single name.
type SeriesResult struct {
	Name       string      `json:"name"`
	Years      YearRange   `json:"years"`
	TotalCount int         `json:"total_count"`
	Points     []YearCount `json:"points"`
}

// Report bundles every category printed by the report command.
type Report struct {
	Popularity []PopularityResult `json:"popularity"`
	Ambiguity  []AmbiguityResult  `json:"ambiguity"`
	Trends     []TrendResult      `json:"trends"`
}

// GetAmbiguityLabel returns a plain text label for an entropy score.
func GetAmbiguityLabel(entropy float64) string {
	switch {
	case entropy >= 0.6:
		return UnisexLabel
	case entropy >= 0.3:
		return LeaningLabel
	case entropy > 0:
		return SkewedLabel
	default:
		return SingleLabel
	}
}

// EnrichSummaries adds rank, label and total to a list of summaries.
func EnrichSummaries(names []NameGenderSummary) []RankedSummary {
	output := make([]RankedSummary, len(names))
	for i, n := range names {
		output[i] = RankedSummary{
			Rank:              i + 1,
			Label:             GetAmbiguityLabel(n.Entropy),
			Total:             n.Total(),
			NameGenderSummary: n,
		}
	}
	return output
}

// EnrichChanges adds rank to a list of change results.
func EnrichChanges(names []ChangeResult) []RankedChange {
	output := make([]RankedChange, len(names))
	for i, n := range names {
		output[i] = RankedChange{Rank: i + 1, ChangeResult: n}
	}
	return output
}
