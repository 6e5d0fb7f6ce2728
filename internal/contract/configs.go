package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/huangsam/babynames/schema"
)

// Default values for configuration.
const (
	DefaultDataPath        = "names"
	DefaultResultLimit     = 5
	MaxResultLimit         = 1000
	DefaultPrecision       = 4
	MaxPrecision           = 6
	DefaultMinCount        = 1000
	DefaultTargetYears     = "2013,1945"
	DefaultBaseYear        = 1980
	DefaultCompareYear     = 2014
	DefaultMigrateToLatest = -1
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for every command.
// This struct remains the "final, validated" config.
type Config struct {
	SourceBackend schema.SourceBackend
	DataPath      string // directory, file or connection string depending on SourceBackend
	StrictParse   bool   // fail on malformed lines instead of skipping them

	Grouping    schema.GroupingStrategy
	RangePolicy schema.RangePolicy
	StartYear   int // year matrix start, 0 with EndYear 0 means derive from data
	EndYear     int

	Years       []schema.YearRange // popularity windows, empty means the dataset span
	TargetYears []schema.YearRange // ambiguity windows
	Metrics     []schema.PopularityMetric
	MinCount    int
	Basis       schema.ThresholdBasis

	BaseYear    int
	CompareYear int
	Policies    []schema.ChangePolicy
	Directions  []schema.ChangeDirection

	SeriesName string

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	TargetBackend schema.SourceBackend
	TargetConnect string // Please use env var as this is plaintext
	TargetVersion int

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SeriesName string

	// --- Fields from rootCmd.PersistentFlags() ---
	Source      string `mapstructure:"source"`
	Data        string `mapstructure:"data"`
	StrictParse bool   `mapstructure:"strict-parse"`
	Grouping    string `mapstructure:"grouping"`
	RangePolicy string `mapstructure:"range-policy"`
	StartYear   int    `mapstructure:"start-year"`
	EndYear     int    `mapstructure:"end-year"`
	Limit       int    `mapstructure:"limit"`
	Precision   int    `mapstructure:"precision"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Width       int    `mapstructure:"width"`
	Emoji       string `mapstructure:"emoji"`
	Color       string `mapstructure:"color"`

	// --- Ranking fields from rootCmd.PersistentFlags() ---
	Years       string `mapstructure:"years"`
	TargetYears string `mapstructure:"target-years"`
	Metric      string `mapstructure:"metric"`
	MinCount    int    `mapstructure:"min-count"`
	Basis       string `mapstructure:"basis"`
	Base        int    `mapstructure:"base"`
	Compare     int    `mapstructure:"compare"`
	Policy      string `mapstructure:"policy"`
	Direction   string `mapstructure:"direction"`

	// --- Fields from datasetCmd.PersistentFlags() ---
	TargetBackend string `mapstructure:"target-backend"`
	TargetConnect string `mapstructure:"target-connect"`
	TargetVersion int    `mapstructure:"target-version"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Years = slices.Clone(c.Years)
	clone.TargetYears = slices.Clone(c.TargetYears)
	clone.Metrics = slices.Clone(c.Metrics)
	clone.Policies = slices.Clone(c.Policies)
	clone.Directions = slices.Clone(c.Directions)
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(_ context.Context, cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSource(cfg, input); err != nil {
		return err
	}
	if err := processYears(cfg, input); err != nil {
		return err
	}
	if err := processRanking(cfg, input); err != nil {
		return err
	}
	if err := processTargetBackend(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.SourceBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.SeriesName = strings.TrimSpace(input.SeriesName)

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	return nil
}

// processSource validates where records are loaded from.
func processSource(cfg *Config, input *ConfigRawInput) error {
	cfg.SourceBackend = schema.SourceBackend(strings.ToLower(input.Source))
	if _, ok := schema.ValidSourceBackends[cfg.SourceBackend]; !ok {
		return fmt.Errorf("invalid source '%s'. must be csv, parquet, sqlite, mysql, postgresql", input.Source)
	}
	cfg.DataPath = strings.TrimSpace(input.Data)
	cfg.StrictParse = input.StrictParse

	switch cfg.SourceBackend {
	case schema.SQLiteBackend:
		if cfg.DataPath == "" {
			cfg.DataPath = GetDatasetDBFilePath()
		}
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if err := ValidateDatabaseConnectionString(cfg.SourceBackend, cfg.DataPath); err != nil {
			return err
		}
	default:
		if cfg.DataPath == "" {
			return fmt.Errorf("--data is required when using %s source", cfg.SourceBackend)
		}
	}

	cfg.Grouping = schema.GroupingStrategy(strings.ToLower(input.Grouping))
	if _, ok := schema.ValidGroupingStrategies[cfg.Grouping]; !ok {
		return fmt.Errorf("invalid grouping '%s'. must be hash, sorted", input.Grouping)
	}
	return nil
}

// processYears validates the matrix range and the ranking windows.
func processYears(cfg *Config, input *ConfigRawInput) error {
	cfg.RangePolicy = schema.RangePolicy(strings.ToLower(input.RangePolicy))
	if _, ok := schema.ValidRangePolicies[cfg.RangePolicy]; !ok {
		return fmt.Errorf("invalid range policy '%s'. must be skip, clip, error", input.RangePolicy)
	}

	if (input.StartYear == 0) != (input.EndYear == 0) {
		return fmt.Errorf("--start-year and --end-year must be set together")
	}
	matrixRange := schema.YearRange{Start: input.StartYear, End: input.EndYear}
	if err := matrixRange.Validate(); err != nil {
		return err
	}
	cfg.StartYear, cfg.EndYear = input.StartYear, input.EndYear

	cfg.Years = nil
	if strings.TrimSpace(input.Years) != "" {
		years, err := schema.ParseYearRanges(input.Years)
		if err != nil {
			return fmt.Errorf("invalid --years: %w", err)
		}
		cfg.Years = years
	}

	targets := input.TargetYears
	if strings.TrimSpace(targets) == "" {
		targets = DefaultTargetYears
	}
	targetYears, err := schema.ParseYearRanges(targets)
	if err != nil {
		return fmt.Errorf("invalid --target-years: %w", err)
	}
	cfg.TargetYears = targetYears

	cfg.BaseYear, cfg.CompareYear = input.Base, input.Compare
	if cfg.BaseYear <= 0 || cfg.CompareYear <= 0 {
		return fmt.Errorf("--base and --compare must be positive years (received %d and %d)", input.Base, input.Compare)
	}
	return nil
}

// parseChoices splits a comma-separated list and checks each value against valid.
// An empty string selects every value in all.
func parseChoices[T ~string](raw string, flag string, all []T, valid map[T]struct{}) ([]T, error) {
	if strings.TrimSpace(raw) == "" {
		return slices.Clone(all), nil
	}
	var result []T
	for part := range strings.SplitSeq(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		value := T(part)
		if _, ok := valid[value]; !ok {
			return nil, fmt.Errorf("invalid --%s value '%s'", flag, part)
		}
		if !slices.Contains(result, value) {
			result = append(result, value)
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("--%s needs at least one value", flag)
	}
	return result, nil
}

// processRanking validates the ranking options.
func processRanking(cfg *Config, input *ConfigRawInput) error {
	metrics, err := parseChoices(input.Metric, "metric", schema.AllPopularityMetrics, schema.ValidPopularityMetrics)
	if err != nil {
		return err
	}
	cfg.Metrics = metrics

	if input.MinCount < 0 {
		return fmt.Errorf("min-count cannot be negative (received %d)", input.MinCount)
	}
	cfg.MinCount = input.MinCount

	cfg.Basis = schema.ThresholdBasis(strings.ToLower(input.Basis))
	if _, ok := schema.ValidThresholdBases[cfg.Basis]; !ok {
		return fmt.Errorf("invalid basis '%s'. must be female, total", input.Basis)
	}

	policies, err := parseChoices(input.Policy, "policy", schema.AllChangePolicies, schema.ValidChangePolicies)
	if err != nil {
		return err
	}
	cfg.Policies = policies

	directions, err := parseChoices(input.Direction, "direction", schema.AllChangeDirections, schema.ValidChangeDirections)
	if err != nil {
		return err
	}
	cfg.Directions = directions
	return nil
}

// processTargetBackend validates the dataset import target.
func processTargetBackend(cfg *Config, input *ConfigRawInput) error {
	cfg.TargetVersion = input.TargetVersion
	if cfg.TargetVersion < DefaultMigrateToLatest {
		return fmt.Errorf("target-version must be -1 (latest) or a migration version (received %d)", input.TargetVersion)
	}

	if input.TargetBackend == "" {
		cfg.TargetBackend = schema.NoneBackend
		return nil
	}
	cfg.TargetBackend = schema.SourceBackend(strings.ToLower(input.TargetBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.TargetBackend]; !ok {
		return fmt.Errorf("invalid target backend '%s'. must be sqlite, mysql, postgresql, none", input.TargetBackend)
	}
	cfg.TargetConnect = input.TargetConnect
	if cfg.TargetBackend == schema.SQLiteBackend && cfg.TargetConnect == "" {
		cfg.TargetConnect = GetDatasetDBFilePath()
	}
	if err := ValidateDatabaseConnectionString(cfg.TargetBackend, cfg.TargetConnect); err != nil {
		return err
	}

	// Importing a dataset onto itself would truncate the source before reading it.
	if cfg.TargetBackend == cfg.SourceBackend && cfg.TargetBackend.IsDatabase() {
		source, target := cfg.DataPath, cfg.TargetConnect
		if cfg.TargetBackend == schema.SQLiteBackend {
			source, target = absPath(source), absPath(target)
		}
		if source == target {
			return fmt.Errorf("source and target must use different databases. Both resolve to %q", target)
		}
	}
	return nil
}

// absPath resolves p to an absolute path, returning p unchanged on error.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return filepath.Clean(abs)
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// GetDatasetDBFilePath returns the path to the default SQLite dataset file.
func GetDatasetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".babynames.db"
	}
	return filepath.Join(homeDir, ".babynames.db")
}

// RevalidateRanking applies ranking overrides given outside the command line, such as MCP tool
// parameters. Empty strings keep the current values.
func RevalidateRanking(cfg *Config, years, targetYears, metric, basis string) error {
	if strings.TrimSpace(years) != "" {
		parsed, err := schema.ParseYearRanges(years)
		if err != nil {
			return fmt.Errorf("invalid years: %w", err)
		}
		cfg.Years = parsed
	}
	if strings.TrimSpace(targetYears) != "" {
		parsed, err := schema.ParseYearRanges(targetYears)
		if err != nil {
			return fmt.Errorf("invalid target years: %w", err)
		}
		cfg.TargetYears = parsed
	}
	if strings.TrimSpace(metric) != "" {
		metrics, err := parseChoices(metric, "metric", schema.AllPopularityMetrics, schema.ValidPopularityMetrics)
		if err != nil {
			return err
		}
		cfg.Metrics = metrics
	}
	if basis != "" {
		b := schema.ThresholdBasis(strings.ToLower(basis))
		if _, ok := schema.ValidThresholdBases[b]; !ok {
			return fmt.Errorf("invalid basis '%s'. must be female, total", basis)
		}
		cfg.Basis = b
	}
	if cfg.MinCount < 0 {
		return fmt.Errorf("min-count cannot be negative (received %d)", cfg.MinCount)
	}
	return nil
}

// RevalidateTrends applies policy and direction overrides and checks the trend years.
func RevalidateTrends(cfg *Config, policy, direction string) error {
	if strings.TrimSpace(policy) != "" {
		policies, err := parseChoices(policy, "policy", schema.AllChangePolicies, schema.ValidChangePolicies)
		if err != nil {
			return err
		}
		cfg.Policies = policies
	}
	if strings.TrimSpace(direction) != "" {
		directions, err := parseChoices(direction, "direction", schema.AllChangeDirections, schema.ValidChangeDirections)
		if err != nil {
			return err
		}
		cfg.Directions = directions
	}
	if cfg.BaseYear <= 0 || cfg.CompareYear <= 0 {
		return fmt.Errorf("--base and --compare must be positive years (received %d and %d)", cfg.BaseYear, cfg.CompareYear)
	}
	return nil
}

// RevalidateSeries checks that a series name was given.
func RevalidateSeries(cfg *Config) error {
	cfg.SeriesName = strings.TrimSpace(cfg.SeriesName)
	if cfg.SeriesName == "" {
		return fmt.Errorf("a name is required for series analysis")
	}
	return nil
}
