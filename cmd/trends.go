package cmd

import (
	"github.com/huangsam/babynames/core"
	"github.com/spf13/cobra"
)

// trendsCmd ranks names by percentage change.
var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show the largest percentage increases and decreases between two years.",
	Long: `Build a name-by-year matrix and rank names by percentage change from --base to --compare.

An increase is measured against the base year and a decrease against the
comparison year. When that count is zero, the strict policy drops the name and
the inclusive policy divides by one instead.

Examples:
  # Both policies and directions from 1980 to 2014
  babynames trends --base 1980 --compare 2014

  # Only inclusive increases, with an explicit matrix range
  babynames trends --policy inclusive --direction increase --start-year 1880 --end-year 2014`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("trend ranking", core.ExecuteTrends),
}
