package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/sprintcast/sprintcast/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Sprintcast MCP server",
	Long:  `Launch an MCP server that allows AI agents to run velocity forecasts via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The plan path arrives per tool call, not as a positional argument,
		// and headers stay off stdio which is used for the protocol.
		return sharedSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(context.Background(), cfg)
	},
}
