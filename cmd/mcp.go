package cmd

import (
	"github.com/huangsam/folio/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the folio MCP server",
	Long:  `Launch an MCP server that lets AI agents search the portfolio and replay its commit history via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Nothing may print to stdout here: stdio carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}
