package cmd

import (
	"github.com/huangsam/babynames/core"
	"github.com/spf13/cobra"
)

// reportCmd prints every ranking from a single load.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print popularity, ambiguity and trend rankings together.",
	Long: `Load the dataset once and print the popularity, ambiguity and trend sections.

Every ranking flag applies to its section, so a report with the defaults
matches running popular, ambiguous and trends one after another.

Examples:
  babynames report --data names
  babynames report --output json --output-file report.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("report", core.ExecuteReport),
}
