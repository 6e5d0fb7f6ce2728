package schema

// Custom string types for type safety.
type (
	// Sex is the sex column of a record.
	Sex string

	// OutputMode represents the format of the output.
	OutputMode string

	// SourceBackend represents where records are loaded from.
	SourceBackend string

	// GroupingStrategy selects how records are grouped by name.
	GroupingStrategy string

	// RangePolicy decides what happens to records outside the year matrix span.
	RangePolicy string

	// PopularityMetric selects the count used to rank popularity.
	PopularityMetric string

	// ThresholdBasis selects the count compared against the ambiguity threshold.
	ThresholdBasis string

	// ChangePolicy decides how a zero denominator is handled in percentage change.
	ChangePolicy string

	// ChangeDirection is either increase or decrease.
	ChangeDirection string
)

// All sexes present in the dataset.
const (
	Female Sex = "F"
	Male   Sex = "M"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All record sources supported.
const (
	CSVSource         SourceBackend = "csv" // default
	ParquetSource     SourceBackend = "parquet"
	SQLiteBackend     SourceBackend = "sqlite"
	MySQLBackend      SourceBackend = "mysql"
	PostgreSQLBackend SourceBackend = "postgresql"
	NoneBackend       SourceBackend = "none"
)

// All grouping strategies supported.
const (
	HashGrouping   GroupingStrategy = "hash" // default
	SortedGrouping GroupingStrategy = "sorted"
)

// All out-of-range policies supported.
const (
	SkipOutOfRange  RangePolicy = "skip" // default
	ClipOutOfRange  RangePolicy = "clip"
	ErrorOutOfRange RangePolicy = "error"
)

// All popularity metrics supported.
const (
	TotalMetric  PopularityMetric = "total" // default
	FemaleMetric PopularityMetric = "female"
	MaleMetric   PopularityMetric = "male"
)

// All ambiguity threshold bases supported.
const (
	FemaleBasis ThresholdBasis = "female" // default
	TotalBasis  ThresholdBasis = "total"
)

// All percentage change policies supported.
const (
	StrictPolicy    ChangePolicy = "strict" // default
	InclusivePolicy ChangePolicy = "inclusive"
)

// All change directions supported.
const (
	Increase ChangeDirection = "increase"
	Decrease ChangeDirection = "decrease"
)

// AllPopularityMetrics lists the metrics in report order.
var AllPopularityMetrics = []PopularityMetric{TotalMetric, FemaleMetric, MaleMetric}

// AllChangePolicies lists the change policies in report order.
var AllChangePolicies = []ChangePolicy{StrictPolicy, InclusivePolicy}

// AllChangeDirections lists the change directions in report order.
var AllChangeDirections = []ChangeDirection{Increase, Decrease}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSourceBackends lists all valid record sources.
var ValidSourceBackends = map[SourceBackend]struct{}{
	CSVSource:         {},
	ParquetSource:     {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// ValidDatabaseBackends lists the backends usable as an import target.
var ValidDatabaseBackends = map[SourceBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidGroupingStrategies lists all valid grouping strategies.
var ValidGroupingStrategies = map[GroupingStrategy]struct{}{
	HashGrouping:   {},
	SortedGrouping: {},
}

// ValidRangePolicies lists all valid out-of-range policies.
var ValidRangePolicies = map[RangePolicy]struct{}{
	SkipOutOfRange:  {},
	ClipOutOfRange:  {},
	ErrorOutOfRange: {},
}

// ValidPopularityMetrics lists all valid popularity metrics.
var ValidPopularityMetrics = map[PopularityMetric]struct{}{
	TotalMetric:  {},
	FemaleMetric: {},
	MaleMetric:   {},
}

// ValidThresholdBases lists all valid ambiguity threshold bases.
var ValidThresholdBases = map[ThresholdBasis]struct{}{
	FemaleBasis: {},
	TotalBasis:  {},
}

// ValidChangePolicies lists all valid change policies.
var ValidChangePolicies = map[ChangePolicy]struct{}{
	StrictPolicy:    {},
	InclusivePolicy: {},
}

// ValidChangeDirections lists all valid change directions.
var ValidChangeDirections = map[ChangeDirection]struct{}{
	Increase: {},
	Decrease: {},
}

// IsDatabase reports whether the source is backed by a SQL database.
func (b SourceBackend) IsDatabase() bool {
	switch b {
	case SQLiteBackend, MySQLBackend, PostgreSQLBackend:
		return true
	default:
		return false
	}
}

// DriverName returns the database/sql driver registered for the backend.
func (b SourceBackend) DriverName() string {
	switch b {
	case SQLiteBackend:
		return "sqlite"
	case MySQLBackend:
		return "mysql"
	case PostgreSQLBackend:
		return "pgx"
	default:
		return ""
	}
}
