package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	addNotes   string
	addDueDate string
	addDueHour int
	addTags    []string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new daily task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		title := strings.Join(args, " ")
		var dueHour *int
		if cmd.Flags().Changed("due-hour") {
			dueHour = &addDueHour
		}

		task, err := Engine.AddTask(title, addNotes, addDueDate, dueHour, addTags, nowFn())
		if err != nil {
			return err
		}

		fmt.Printf("Added %s: %s\n", task.ID, task.Title)
		evaluateAndEmit()
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	addCmd.Flags().StringVar(&addDueDate, "due-date", "", "deadline date (YYYY-MM-DD)")
	addCmd.Flags().IntVar(&addDueHour, "due-hour", 0, "deadline hour of day (0-23)")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "comma-separated tags")
	rootCmd.AddCommand(addCmd)
}
