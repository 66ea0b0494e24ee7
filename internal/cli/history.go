package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

var historyCmd = &cobra.Command{
	Use:   "history <task-id>",
	Short: "Show a task's edit history, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		taskID, err := resolveTaskID(args[0])
		if err != nil {
			return err
		}

		records := Engine.History(taskID)
		if len(records) == 0 {
			fmt.Println("No edits recorded.")
			return nil
		}

		for _, r := range records {
			fmt.Printf("%s  rev %d\n", r.Timestamp.Format("2006-01-02 15:04"), r.Snapshot.Revision)
			printDiff(r.Diff)
		}
		return nil
	},
}

func printDiff(d models.TaskDiff) {
	if d.Title != nil {
		fmt.Printf("  title:     %q -> %q\n", d.Title.Old, d.Title.New)
	}
	if d.Notes != nil {
		fmt.Printf("  notes:     %q -> %q\n", d.Notes.Old, d.Notes.New)
	}
	if d.DueDate != nil {
		fmt.Printf("  due date:  %q -> %q\n", d.DueDate.Old, d.DueDate.New)
	}
	if d.DueHour != nil {
		fmt.Printf("  due hour:  %s -> %s\n", hourLabel(d.DueHour.Old), hourLabel(d.DueHour.New))
	}
	if d.Tags != nil {
		fmt.Printf("  tags:      %v -> %v\n", d.Tags.Old, d.Tags.New)
	}
	if d.Completed != nil {
		fmt.Printf("  completed: %t -> %t\n", d.Completed.Old, d.Completed.New)
	}
}

func hourLabel(h *int) string {
	if h == nil {
		return "unset"
	}
	return fmt.Sprintf("%02d:00", *h)
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
