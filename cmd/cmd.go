// Package cmd defines the command-line interface for babynames.
package cmd

import (
	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(popularCmd)
	rootCmd.AddCommand(ambiguousCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the dataset subcommands to the parent dataset command
	datasetCmd.AddCommand(datasetStatusCmd)
	datasetCmd.AddCommand(datasetConvertCmd)
	datasetCmd.AddCommand(datasetImportCmd)
	datasetCmd.AddCommand(datasetMigrateCmd)
	datasetCmd.AddCommand(datasetClearCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("source", string(schema.CSVSource), "Record source: csv or parquet or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().StringP("data", "d", contract.DefaultDataPath, "Data directory, Parquet file or database connection string")
	rootCmd.PersistentFlags().Bool("strict-parse", false, "Fail on malformed lines instead of skipping them")
	rootCmd.PersistentFlags().String("grouping", string(schema.HashGrouping), "Grouping strategy: hash or sorted")
	rootCmd.PersistentFlags().String("range-policy", string(schema.SkipOutOfRange), "Records outside the year matrix: skip or clip or error")
	rootCmd.PersistentFlags().Int("start-year", 0, "First year of the year matrix (0 = derive from data)")
	rootCmd.PersistentFlags().Int("end-year", 0, "Last year of the year matrix (0 = derive from data)")
	rootCmd.PersistentFlags().String("years", "", "Comma-separated popularity windows such as 1910-1919,2014 (default: whole dataset)")
	rootCmd.PersistentFlags().String("target-years", contract.DefaultTargetYears, "Comma-separated ambiguity windows")
	rootCmd.PersistentFlags().String("metric", "", "Comma-separated popularity metrics: total, female, male (default: all)")
	rootCmd.PersistentFlags().Int("min-count", contract.DefaultMinCount, "Ambiguity threshold; only counts above it are ranked")
	rootCmd.PersistentFlags().String("basis", string(schema.FemaleBasis), "Count compared against --min-count: female or total")
	rootCmd.PersistentFlags().Int("base", contract.DefaultBaseYear, "Base year for percentage change")
	rootCmd.PersistentFlags().Int("compare", contract.DefaultCompareYear, "Comparison year for percentage change")
	rootCmd.PersistentFlags().String("policy", "", "Comma-separated change policies: strict, inclusive (default: all)")
	rootCmd.PersistentFlags().String("direction", "", "Comma-separated change directions: increase, decrease (default: all)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all persistent flags of datasetCmd to Viper
	datasetCmd.PersistentFlags().String("target-backend", "", "Dataset store: sqlite or mysql or postgresql or none")
	datasetCmd.PersistentFlags().String("target-connect", "", "Dataset store connection string (e.g., user:pass@tcp(host:port)/dbname)")
	if err := viper.BindPFlags(datasetCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding dataset flags", err)
	}

	// Bind all flags of datasetMigrateCmd to Viper
	datasetMigrateCmd.Flags().Int("target-version", contract.DefaultMigrateToLatest, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(datasetMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding dataset migrate flags", err)
	}
}
