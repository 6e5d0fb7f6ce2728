package cmd

import (
	"github.com/huangsam/babynames/core"
	"github.com/spf13/cobra"
)

// popularCmd ranks names by births.
var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show the most popular names by total, female and male births.",
	Long: `Sum births per name inside each window and rank names by the selected metrics.

Without --years the whole dataset span is a single window. Ties are broken
alphabetically so the output is stable across runs.

Examples:
  # Most popular names over the whole dataset
  babynames popular --data names

  # Top 10 female names for each decade window
  babynames popular --metric female --years 1990-1999,2000-2009 --limit 10

  # Export the ranking to CSV
  babynames popular --output csv --output-file popular.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("popularity ranking", core.ExecutePopular),
}
