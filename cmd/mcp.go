package cmd

import (
	"github.com/huangsam/babynames/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the babynames MCP server",
	Long:  `Launch an MCP server that allows AI agents to query name popularity, ambiguity and trends via standard tools.`,
	Args:  cobra.NoArgs,
	// Load headers are suppressed by the handlers since stdio carries the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, recordSource)
	},
}
