package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo <task-id>",
	Short: "Remove the most recent ledger entry for a task today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		taskID, err := resolveTaskID(args[0])
		if err != nil {
			return err
		}
		if Engine.Undo(taskID, nowFn()) {
			fmt.Printf("Undid today's entry for %s\n", shortID(taskID))
		} else {
			fmt.Printf("Nothing to undo for %s today\n", shortID(taskID))
		}
		evaluateAndEmit()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
