package schema_test

import (
	"testing"

	"github.com/huangsam/babynames/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAmbiguityLabel(t *testing.T) {
	tests := []struct {
		name     string
		entropy  float64
		expected string
	}{
		{"Even Split", 0.6931, "Unisex"},
		{"Unisex Lower", 0.6, "Unisex"},
		{"Leaning Upper", 0.599, "Leaning"},
		{"Leaning Lower", 0.3, "Leaning"},
		{"Skewed Upper", 0.299, "Skewed"},
		{"Skewed Lower", 0.0001, "Skewed"},
		{"Single", 0.0, "Single"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.GetAmbiguityLabel(tt.entropy))
		})
	}
}

func TestEnrichSummaries(t *testing.T) {
	names := []schema.NameGenderSummary{
		{Name: "Casey", FemaleCount: 50, MaleCount: 50, Entropy: 0.6931},
		{Name: "Jordan", FemaleCount: 90, MaleCount: 10, Entropy: 0.3251},
		{Name: "Emma", FemaleCount: 100, MaleCount: 0, Entropy: 0},
	}

	enriched := schema.EnrichSummaries(names)

	require.Len(t, enriched, 3)

	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, "Unisex", enriched[0].Label)
	assert.Equal(t, 100, enriched[0].Total)
	assert.Equal(t, "Casey", enriched[0].Name)

	assert.Equal(t, 2, enriched[1].Rank)
	assert.Equal(t, "Leaning", enriched[1].Label)

	assert.Equal(t, 3, enriched[2].Rank)
	assert.Equal(t, "Single", enriched[2].Label)
	assert.Equal(t, "Emma", enriched[2].Name)
}

func TestEnrichChanges(t *testing.T) {
	enriched := schema.EnrichChanges([]schema.ChangeResult{
		{Name: "Nova", BaseCount: 0, CompareCount: 50, Percent: 5000},
		{Name: "Liam", BaseCount: 10, CompareCount: 20, Percent: 100},
	})

	require.Len(t, enriched, 2)
	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, "Nova", enriched[0].Name)
	assert.Equal(t, 2, enriched[1].Rank)
	assert.InDelta(t, 100.0, enriched[1].Percent, 1e-9)

	assert.Empty(t, schema.EnrichChanges(nil))
}

func TestParseYearRange(t *testing.T) {
	tests := []struct {
		input   string
		want    schema.YearRange
		wantErr bool
	}{
		{"2013", schema.YearRange{Start: 2013, End: 2013}, false},
		{"1910-2014", schema.YearRange{Start: 1910, End: 2014}, false},
		{" 1990 - 1999 ", schema.YearRange{Start: 1990, End: 1999}, false},
		{"2014-1910", schema.YearRange{}, true},
		{"abc", schema.YearRange{}, true},
		{"1990-", schema.YearRange{}, true},
		{"", schema.YearRange{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := schema.ParseYearRange(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseYearRanges(t *testing.T) {
	ranges, err := schema.ParseYearRanges("2013,1945")
	require.NoError(t, err)
	assert.Equal(t, []schema.YearRange{schema.SingleYear(2013), schema.SingleYear(1945)}, ranges)

	ranges, err = schema.ParseYearRanges("1990-1999, 2013,")
	require.NoError(t, err)
	assert.Len(t, ranges, 2)
	assert.Equal(t, "1990-1999", ranges[0].String())
	assert.Equal(t, "2013", ranges[1].String())

	_, err = schema.ParseYearRanges(" , ")
	assert.Error(t, err)

	var rangeErr *schema.RangeError
	_, err = schema.ParseYearRanges("2013,2000-1990")
	assert.ErrorAs(t, err, &rangeErr)
}

func TestYearRange(t *testing.T) {
	r := schema.YearRange{Start: 1910, End: 2014}
	assert.True(t, r.Contains(1910))
	assert.True(t, r.Contains(2014))
	assert.False(t, r.Contains(1909))
	assert.False(t, r.Contains(2015))
	assert.Equal(t, 105, r.Len())
	assert.NoError(t, r.Validate())
	assert.False(t, r.IsZero())

	assert.True(t, schema.YearRange{}.IsZero())
	assert.Equal(t, 0, schema.YearRange{Start: 2000, End: 1999}.Len())
	assert.Error(t, schema.YearRange{Start: 2000, End: 1999}.Validate())
}
