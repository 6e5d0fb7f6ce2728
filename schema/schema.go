// Package schema has models, enums and errors for all parts of babynames.
package schema

import "math"

// Record is one state/sex/year/name/count row of the source data.
type Record struct {
	State string `json:"state"`
	Sex   Sex    `json:"sex"`
	Year  int    `json:"year"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// NameGenderSummary holds the female and male totals of one name within a year range.
type NameGenderSummary struct {
	Name        string  `json:"name"`
	FemaleCount int     `json:"female_count"`
	MaleCount   int     `json:"male_count"`
	Entropy     float64 `json:"entropy"` // 0 for single-gender names, ln(2) at a 50/50 split
}

// Total returns the female and male counts combined.
func (s NameGenderSummary) Total() int {
	return s.FemaleCount + s.MaleCount
}

// NameYearSeries holds the yearly counts of one name across all sexes.
type NameYearSeries struct {
	Name         string `json:"name"`
	TotalCount   int    `json:"total_count"`
	StartYear    int    `json:"start_year"`
	CountsByYear []int  `json:"counts_by_year"` // indexed by year - StartYear
}

// EndYear returns the last year covered by the series.
func (s NameYearSeries) EndYear() int {
	return s.StartYear + len(s.CountsByYear) - 1
}

// CountIn returns the count for a year, or 0 when the year is outside the series.
func (s NameYearSeries) CountIn(year int) int {
	idx := year - s.StartYear
	if idx < 0 || idx >= len(s.CountsByYear) {
		return 0
	}
	return s.CountsByYear[idx]
}

// ChangeResult is the percentage change of a name between a base and a comparison year.
type ChangeResult struct {
	Name         string  `json:"name"`
	BaseCount    int     `json:"base_count"`
	CompareCount int     `json:"compare_count"`
	Percent      float64 `json:"percent"`
	Excluded     bool    `json:"excluded"` // zero denominator under the strict policy
}

// YearCount is a single year/count point of a series.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// BinaryEntropy returns the Shannon entropy (natural log) of a female/male split.
// It is exactly 0 when either count is 0.
func BinaryEntropy(female, male int) float64 {
	if female <= 0 || male <= 0 {
		return 0.0
	}
	total := float64(female + male)
	pF := float64(female) / total
	pM := float64(male) / total
	return -pF*math.Log(pF) - pM*math.Log(pM)
}
