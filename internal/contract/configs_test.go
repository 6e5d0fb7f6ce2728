package contract

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/huangsam/babynames/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns the raw input produced by the default flag values.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Source:        string(schema.CSVSource),
		Data:          "names",
		Grouping:      string(schema.HashGrouping),
		RangePolicy:   string(schema.SkipOutOfRange),
		Limit:         DefaultResultLimit,
		Precision:     DefaultPrecision,
		Output:        string(schema.TextOut),
		Emoji:         "no",
		Color:         "yes",
		TargetYears:   DefaultTargetYears,
		MinCount:      DefaultMinCount,
		Basis:         string(schema.FemaleBasis),
		Base:          DefaultBaseYear,
		Compare:       DefaultCompareYear,
		TargetVersion: DefaultMigrateToLatest,
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid defaults", modify: func(*ConfigRawInput) {}},
		{name: "invalid source", modify: func(in *ConfigRawInput) { in.Source = "excel" }, expectError: true},
		{name: "csv without data", modify: func(in *ConfigRawInput) { in.Data = "" }, expectError: true},
		{name: "mysql without dsn", modify: func(in *ConfigRawInput) { in.Source = "mysql"; in.Data = "" }, expectError: true},
		{name: "mysql with dsn", modify: func(in *ConfigRawInput) {
			in.Source = "mysql"
			in.Data = "user:pass@tcp(localhost:3306)/babynames"
		}},
		{name: "invalid grouping", modify: func(in *ConfigRawInput) { in.Grouping = "random" }, expectError: true},
		{name: "invalid range policy", modify: func(in *ConfigRawInput) { in.RangePolicy = "wrap" }, expectError: true},
		{name: "start year without end year", modify: func(in *ConfigRawInput) { in.StartYear = 1910 }, expectError: true},
		{name: "inverted matrix range", modify: func(in *ConfigRawInput) { in.StartYear = 2014; in.EndYear = 1910 }, expectError: true},
		{name: "explicit matrix range", modify: func(in *ConfigRawInput) { in.StartYear = 1910; in.EndYear = 2014 }},
		{name: "invalid years", modify: func(in *ConfigRawInput) { in.Years = "nineteen" }, expectError: true},
		{name: "invalid target years", modify: func(in *ConfigRawInput) { in.TargetYears = "2014-2000" }, expectError: true},
		{name: "zero limit", modify: func(in *ConfigRawInput) { in.Limit = 0 }, expectError: true},
		{name: "limit too large", modify: func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }, expectError: true},
		{name: "precision too large", modify: func(in *ConfigRawInput) { in.Precision = MaxPrecision + 1 }, expectError: true},
		{name: "invalid output", modify: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: true},
		{name: "parquet without file", modify: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: true},
		{name: "parquet with file", modify: func(in *ConfigRawInput) { in.Output = "parquet"; in.OutputFile = "out.parquet" }},
		{name: "invalid color", modify: func(in *ConfigRawInput) { in.Color = "maybe" }, expectError: true},
		{name: "invalid metric", modify: func(in *ConfigRawInput) { in.Metric = "female,other" }, expectError: true},
		{name: "negative min count", modify: func(in *ConfigRawInput) { in.MinCount = -1 }, expectError: true},
		{name: "invalid basis", modify: func(in *ConfigRawInput) { in.Basis = "male" }, expectError: true},
		{name: "invalid policy", modify: func(in *ConfigRawInput) { in.Policy = "lenient" }, expectError: true},
		{name: "separator-only metric", modify: func(in *ConfigRawInput) { in.Metric = "," }, expectError: true},
		{name: "separator-only policy", modify: func(in *ConfigRawInput) { in.Policy = " , " }, expectError: true},
		{name: "separator-only direction", modify: func(in *ConfigRawInput) { in.Direction = ",," }, expectError: true},
		{name: "invalid direction", modify: func(in *ConfigRawInput) { in.Direction = "sideways" }, expectError: true},
		{name: "zero base year", modify: func(in *ConfigRawInput) { in.Base = 0 }, expectError: true},
		{name: "invalid target backend", modify: func(in *ConfigRawInput) { in.TargetBackend = "redis" }, expectError: true},
		{name: "postgres target without host", modify: func(in *ConfigRawInput) {
			in.TargetBackend = "postgresql"
			in.TargetConnect = "dbname=babynames"
		}, expectError: true},
		{name: "invalid target version", modify: func(in *ConfigRawInput) { in.TargetVersion = -2 }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.modify(input)
			cfg := &Config{}
			err := ProcessAndValidate(context.Background(), cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(context.Background(), cfg, validInput()))

	assert.Equal(t, schema.CSVSource, cfg.SourceBackend)
	assert.Equal(t, "names", cfg.DataPath)
	assert.Equal(t, schema.HashGrouping, cfg.Grouping)
	assert.Equal(t, schema.SkipOutOfRange, cfg.RangePolicy)
	assert.Zero(t, cfg.StartYear)
	assert.Zero(t, cfg.EndYear)
	assert.Empty(t, cfg.Years)
	assert.Equal(t, []schema.YearRange{schema.SingleYear(2013), schema.SingleYear(1945)}, cfg.TargetYears)
	assert.Equal(t, schema.AllPopularityMetrics, cfg.Metrics)
	assert.Equal(t, 1000, cfg.MinCount)
	assert.Equal(t, schema.FemaleBasis, cfg.Basis)
	assert.Equal(t, 1980, cfg.BaseYear)
	assert.Equal(t, 2014, cfg.CompareYear)
	assert.Equal(t, schema.AllChangePolicies, cfg.Policies)
	assert.Equal(t, schema.AllChangeDirections, cfg.Directions)
	assert.Equal(t, 5, cfg.ResultLimit)
	assert.Equal(t, schema.NoneBackend, cfg.TargetBackend)
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.UseEmojis)
}

func TestProcessAndValidateChoices(t *testing.T) {
	input := validInput()
	input.Metric = " Female, male,female "
	input.Policy = "inclusive"
	input.Direction = "decrease"
	input.Years = "1910-2014"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(context.Background(), cfg, input))
	assert.Equal(t, []schema.PopularityMetric{schema.FemaleMetric, schema.MaleMetric}, cfg.Metrics)
	assert.Equal(t, []schema.ChangePolicy{schema.InclusivePolicy}, cfg.Policies)
	assert.Equal(t, []schema.ChangeDirection{schema.Decrease}, cfg.Directions)
	assert.Equal(t, []schema.YearRange{{Start: 1910, End: 2014}}, cfg.Years)
}

func TestProcessAndValidateSQLiteDefaults(t *testing.T) {
	input := validInput()
	input.Source = "sqlite"
	input.Data = ""

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(context.Background(), cfg, input))
	assert.Equal(t, GetDatasetDBFilePath(), cfg.DataPath)

	t.Run("import onto itself", func(t *testing.T) {
		input.TargetBackend = "sqlite"
		err := ProcessAndValidate(context.Background(), &Config{}, input)
		assert.ErrorContains(t, err, "different databases")
	})

	t.Run("import into another file", func(t *testing.T) {
		input.TargetBackend = "sqlite"
		input.TargetConnect = filepath.Join(t.TempDir(), "copy.db")
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(context.Background(), cfg, input))
		assert.Equal(t, schema.SQLiteBackend, cfg.TargetBackend)
	})
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.SourceBackend
		conn    string
		wantErr bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"none", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "root:pw@tcp(localhost:3306)/babynames", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql missing tcp", schema.MySQLBackend, "root:pw@localhost/babynames", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 user=u password=p dbname=babynames", false},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.conn)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{TargetYears: []schema.YearRange{schema.SingleYear(2013)}, Metrics: []schema.PopularityMetric{schema.TotalMetric}}
	clone := cfg.Clone()
	clone.TargetYears[0] = schema.SingleYear(1945)
	clone.Metrics = append(clone.Metrics, schema.MaleMetric)

	assert.Equal(t, 2013, cfg.TargetYears[0].Start)
	assert.Len(t, cfg.Metrics, 1)
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(profile, "babynames"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "babynames", profile.Prefix)
}

func TestRevalidateRanking(t *testing.T) {
	cfg := &Config{Metrics: schema.AllPopularityMetrics, Basis: schema.FemaleBasis}
	require.NoError(t, RevalidateRanking(cfg, "1910-1919", "2000", "male", "total"))
	assert.Equal(t, []schema.YearRange{{Start: 1910, End: 1919}}, cfg.Years)
	assert.Equal(t, []schema.YearRange{schema.SingleYear(2000)}, cfg.TargetYears)
	assert.Equal(t, []schema.PopularityMetric{schema.MaleMetric}, cfg.Metrics)
	assert.Equal(t, schema.TotalBasis, cfg.Basis)

	assert.Error(t, RevalidateRanking(cfg, "abc", "", "", ""))
	assert.Error(t, RevalidateRanking(cfg, "", "", "", "male"))
	assert.Error(t, RevalidateRanking(&Config{MinCount: -1}, "", "", "", ""))
	assert.ErrorContains(t, RevalidateRanking(cfg, "", "", " , ", ""), "at least one value")
}

func TestRevalidateTrends(t *testing.T) {
	cfg := &Config{BaseYear: 1980, CompareYear: 2014, Policies: schema.AllChangePolicies}
	require.NoError(t, RevalidateTrends(cfg, "inclusive", ""))
	assert.Equal(t, []schema.ChangePolicy{schema.InclusivePolicy}, cfg.Policies)

	assert.Error(t, RevalidateTrends(cfg, "", "sideways"))
	cfg.BaseYear = 0
	assert.ErrorContains(t, RevalidateTrends(cfg, "", ""), "positive years")
}

func TestRevalidateSeries(t *testing.T) {
	cfg := &Config{SeriesName: "  Emma "}
	require.NoError(t, RevalidateSeries(cfg))
	assert.Equal(t, "Emma", cfg.SeriesName)
	assert.Error(t, RevalidateSeries(&Config{}))
}
