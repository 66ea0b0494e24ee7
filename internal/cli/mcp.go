package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admiralsuez/shakshuka/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Run a Model Context Protocol server exposing the engine to AI
assistants: list_tasks, strike_task, undo_strike, get_month_stats, and
get_settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		server := mcp.NewServer(Engine, appVersion)
		return server.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
