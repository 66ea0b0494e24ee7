package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var strikeNote string

var strikeCmd = &cobra.Command{
	Use:   "strike <task-id>",
	Short: "Mark a task handled for today without completing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		taskID, err := resolveTaskID(args[0])
		if err != nil {
			return err
		}
		if err := Engine.Strike(taskID, strikeNote, nowFn()); err != nil {
			return err
		}

		fmt.Printf("Struck %s for today\n", shortID(taskID))

		// A strike may complete the day or be the first action after the
		// day advanced: run the watchers and surface both payloads.
		evaluateAndEmit()
		return nil
	},
}

func init() {
	strikeCmd.Flags().StringVar(&strikeNote, "note", "", "optional note stored on the ledger entry")
	rootCmd.AddCommand(strikeCmd)
}
