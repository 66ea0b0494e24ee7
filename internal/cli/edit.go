package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

var (
	editTitle   string
	editNotes   string
	editDueDate string
	editDueHour int
	editTags    []string
)

var editCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit a task's fields, recording a revisioned diff",
	Long: `Edit one or more task fields. A no-op edit (all new values equal the
current ones) records nothing; otherwise the task's revision increments by
one and the change lands in the update history.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		taskID, err := resolveTaskID(args[0])
		if err != nil {
			return err
		}

		task, err := Engine.EditTask(taskID, func(t *models.Task) {
			if cmd.Flags().Changed("title") {
				t.Title = editTitle
			}
			if cmd.Flags().Changed("notes") {
				t.Notes = editNotes
			}
			if cmd.Flags().Changed("due-date") {
				t.DueDate = editDueDate
			}
			if cmd.Flags().Changed("due-hour") {
				hour := editDueHour
				t.DueHour = &hour
			}
			if cmd.Flags().Changed("clear-due") {
				t.DueDate = ""
				t.DueHour = nil
			}
			if cmd.Flags().Changed("tags") {
				t.Tags = editTags
			}
		}, nowFn())
		if err != nil {
			return err
		}

		fmt.Printf("%s at revision %d\n", shortID(task.ID), task.Revision)
		evaluateAndEmit()
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "new notes")
	editCmd.Flags().StringVar(&editDueDate, "due-date", "", "new deadline date (YYYY-MM-DD)")
	editCmd.Flags().IntVar(&editDueHour, "due-hour", 0, "new deadline hour (0-23)")
	editCmd.Flags().Bool("clear-due", false, "remove any deadline")
	editCmd.Flags().StringSliceVar(&editTags, "tags", nil, "replacement tag set")
	rootCmd.AddCommand(editCmd)
}
