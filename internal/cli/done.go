package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a task's permanent completed flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		taskID, err := resolveTaskID(args[0])
		if err != nil {
			return err
		}
		task, err := Engine.ToggleComplete(taskID, nowFn())
		if err != nil {
			return err
		}

		if task.Completed {
			fmt.Printf("Completed %s: %s\n", shortID(task.ID), task.Title)
		} else {
			fmt.Printf("Reopened %s: %s\n", shortID(task.ID), task.Title)
		}
		evaluateAndEmit()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
