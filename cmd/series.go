package cmd

import (
	"github.com/huangsam/babynames/core"
	"github.com/spf13/cobra"
)

// seriesCmd prints the yearly counts of one name.
var seriesCmd = &cobra.Command{
	Use:   "series <name>",
	Short: "Show the yearly births of a single name.",
	Long: `Print every year in which the name was given, with its births across all states and sexes.

Names are case-sensitive and match the spelling used in the source files.

Examples:
  babynames series Emma
  babynames series Emma --output csv --output-file emma.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("series analysis", core.ExecuteSeries),
}
