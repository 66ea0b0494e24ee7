package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Delete a task (its ledger history is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		taskID, err := resolveTaskID(args[0])
		if err != nil {
			return err
		}
		if err := Engine.DeleteTask(taskID); err != nil {
			return err
		}

		fmt.Printf("Deleted %s\n", shortID(taskID))
		evaluateAndEmit()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
