package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsSince string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show live counts for the current effective month",
	Long: `Show strike/completed/expired counts for the current effective month,
recomputed live from the ledger (stored counters are caches and are never
trusted over a fresh recomputation), plus operational metrics from the
event log when --since is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		stats := Engine.MonthStats(nowFn())
		fmt.Println(headerStyle.Render(fmt.Sprintf("Month %s", stats.Month)))
		fmt.Printf("  strikes:     %d\n", stats.Strikes)
		fmt.Printf("  completed:   %d\n", stats.Completed)
		fmt.Printf("  expired:     %d\n", stats.Expired)
		fmt.Printf("  tasks added: %d\n", stats.TasksAdded)

		if statsSince != "" && MetricsCalc != nil {
			d, err := time.ParseDuration(statsSince)
			if err != nil {
				return fmt.Errorf("parsing --since: %w", err)
			}
			m, err := MetricsCalc.Calculate(nowFn().Add(-d))
			if err != nil {
				return fmt.Errorf("calculating metrics: %w", err)
			}
			fmt.Println(headerStyle.Render("Activity"))
			fmt.Printf("  strikes recorded: %d  undone: %d\n", m.StrikesRecorded, m.StrikesUndone)
			fmt.Printf("  days cleared:     %d\n", m.DaysCleared)
			fmt.Printf("  recaps:           %d\n", m.RecapsGenerated)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsSince, "since", "", "also show event-log metrics for this window (e.g. 168h)")
	rootCmd.AddCommand(statsCmd)
}
