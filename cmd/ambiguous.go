package cmd

import (
	"github.com/huangsam/babynames/core"
	"github.com/spf13/cobra"
)

// ambiguousCmd ranks names by gender ambiguity.
var ambiguousCmd = &cobra.Command{
	Use:   "ambiguous",
	Short: "Show the most gender-ambiguous names for each target year.",
	Long: `Rank names by the binary entropy of their female and male births.

A name scores ln(2) when it is given equally to both sexes and 0 when it is
given to one sex only. Only names whose basis count (female births by default)
is strictly greater than --min-count are ranked.

Examples:
  # Most ambiguous names in 2013 and 1945
  babynames ambiguous --target-years 2013,1945

  # Use total births as the threshold basis
  babynames ambiguous --basis total --min-count 500`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("ambiguity ranking", core.ExecuteAmbiguous),
}
