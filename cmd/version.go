package cmd

import (
	"runtime"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of babynames.",
	Long: `Display version information including build details.

Shows the release version, Git commit hash, build timestamp, Go runtime
and the default SQLite dataset location used by 'dataset import'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("babynames CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		cmd.Printf("  Dataset: %s\n", contract.GetDatasetDBFilePath())
	},
}
