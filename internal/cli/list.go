package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admiralsuez/shakshuka/internal/core"
	"github.com/admiralsuez/shakshuka/pkg/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks classified against the current effective day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		result := Engine.Evaluate(nowFn())
		fmt.Println(renderPartition(result))
		emitWatcherSignals(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// renderPartition formats the three buckets for terminal display. Active
// tasks already handled today render struck through at the bottom of the
// active section, matching the classifier's ordering.
func renderPartition(result core.EvalResult) string {
	out := titleStyle.Render(fmt.Sprintf("Today: %s", result.Date)) + "\n\n"

	out += headerStyle.Render(fmt.Sprintf("Active (%d)", len(result.Partition.Active))) + "\n"
	if len(result.Partition.Active) == 0 {
		out += helpStyle.Render("  nothing active") + "\n"
	}
	for _, t := range result.Partition.Active {
		line := fmt.Sprintf("  %s  %s", shortID(t.ID), t.Title)
		if core.HandledToday(result.Entries, t.ID, result.Date) {
			out += handledStyle.Render(line+"  (done for today)") + "\n"
		} else {
			out += activeStyle.Render(line) + "\n"
		}
	}

	if len(result.Partition.Expired) > 0 {
		out += "\n" + headerStyle.Render(fmt.Sprintf("Expired (%d)", len(result.Partition.Expired))) + "\n"
		for _, t := range result.Partition.Expired {
			out += expiredStyle.Render(fmt.Sprintf("  %s  %s%s", shortID(t.ID), t.Title, dueLabel(t))) + "\n"
		}
	}

	if len(result.Partition.Completed) > 0 {
		out += "\n" + headerStyle.Render(fmt.Sprintf("Completed (%d)", len(result.Partition.Completed))) + "\n"
		for _, t := range result.Partition.Completed {
			out += completedStyle.Render(fmt.Sprintf("  %s  %s", shortID(t.ID), t.Title)) + "\n"
		}
	}

	return out
}

func renderRecap(r models.RecapSummary) string {
	return headerStyle.Render(fmt.Sprintf("Recap %s", r.Date)) +
		fmt.Sprintf("\n  tasks touched: %d  struck: %d  completed: %d  expired: %d",
			r.Total, r.Struck, r.Completed, r.Expired)
}

func dueLabel(t models.Task) string {
	if t.HasDueDate() {
		return fmt.Sprintf("  (due %s)", t.DueDate)
	}
	if t.DueHour != nil {
		return fmt.Sprintf("  (due by %02d:00)", *t.DueHour)
	}
	return ""
}

// shortID abbreviates a UUID for display; full IDs still work everywhere.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func notifyCelebration(c models.Celebration) {
	if Notifier != nil {
		_ = Notifier.NotifyCelebration(c)
	}
}

func notifyRecap(r models.RecapSummary) {
	if Notifier != nil {
		_ = Notifier.NotifyRecap(r)
	}
}
