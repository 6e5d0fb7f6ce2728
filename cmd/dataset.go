package cmd

import (
	"os"

	"github.com/huangsam/babynames/core"
	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/datastore"
	"github.com/spf13/cobra"
)

// datasetCmd focused on dataset management.
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect, convert and import the baby names dataset",
	Long: `Manage the records behind every ranking command.

The dataset can be read from the original text files, from a Parquet file
produced by 'dataset convert', or from a SQL database filled by 'dataset import'.

Supported stores: SQLite (default file ~/.babynames.db), MySQL, PostgreSQL

Subcommands:
  status  - Show dataset and store statistics
  convert - Write the records to a Parquet file
  import  - Copy the records into a SQL store
  migrate - Run store schema migrations
  clear   - Remove the imported records

Examples:
  # Import the text files into SQLite and rank from there
  babynames dataset import --data names --target-backend sqlite
  babynames popular --source sqlite`,
}

// datasetStatusCmd shows dataset statistics.
var datasetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display record counts, years and births per sex",
	Long: `Load the source and summarize it.

When --target-backend is set, the status of the SQL store is printed as well:
schema version, row count, year span and the time of the last import.

Examples:
  babynames dataset status --data names
  babynames dataset status --target-backend sqlite`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDatasetStatus(rootCtx, os.Stdout, cfg, recordSource, datastore.Manager.GetStore()); err != nil {
			contract.LogFatal("Failed to get dataset status", err)
		}
	},
}

// datasetConvertCmd writes the records to Parquet.
var datasetConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the records to a Parquet file",
	Long: `Write every source record to a Parquet file that can be used with --source parquet.

Requires: --output-file parameter

Examples:
  babynames dataset convert --data names --output-file names.parquet
  babynames popular --source parquet --data names.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDatasetConvert(rootCtx, os.Stdout, cfg, recordSource); err != nil {
			contract.LogFatal("Failed to convert dataset", err)
		}
	},
}

// datasetImportCmd copies the records into a SQL store.
var datasetImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the records into a SQL store",
	Long: `Migrate the store to the latest schema and replace its records with the source records.

The import runs in a single transaction, so a failed import leaves the
previous records in place.

Examples:
  babynames dataset import --target-backend sqlite
  babynames dataset import --target-backend mysql --target-connect 'user:pass@tcp(localhost:3306)/babynames'`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDatasetImport(rootCtx, os.Stdout, cfg, recordSource, datastore.Manager.GetStore()); err != nil {
			contract.LogFatal("Failed to import dataset", err)
		}
	},
}

// datasetMigrateCmd runs database migrations for the dataset store.
var datasetMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run store schema migrations (upgrades/downgrades)",
	Long: `Manage schema versions of the dataset store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  babynames dataset migrate --target-backend sqlite

  # Rollback to initial state
  babynames dataset migrate --target-backend sqlite --target-version 0`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDatasetMigrate(rootCtx, cfg, datastore.Manager.GetStore()); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

// datasetClearCmd removes the imported dataset.
var datasetClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the imported dataset from the store",
	Long: `Delete the imported records, the import log and the migration state.

For SQLite the database file is removed. WARNING: This action cannot be undone.

Examples:
  babynames dataset clear --target-backend sqlite`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDatasetClear(rootCtx, os.Stdout, cfg, datastore.Manager.GetStore()); err != nil {
			contract.LogFatal("Failed to clear dataset", err)
		}
	},
}
