package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recapDate string

var recapCmd = &cobra.Command{
	Use:   "recap",
	Short: "Show the daily summary for a past effective date",
	Long: `Show the ledger summary for a given effective date (default: the
previous calendar day). This is a read-only view; the automatic one-shot
recap still fires on its own when the effective day advances.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		date := recapDate
		if date == "" {
			settings := Engine.Settings()
			date = previousDate(nowFn(), settings.Timezone)
		}

		stats := Engine.DayStats(date)
		if stats.Empty() {
			fmt.Printf("No activity on %s\n", date)
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Recap %s", date)))
		fmt.Printf("  tasks touched: %d\n", stats.Total)
		fmt.Printf("  struck:        %d\n", stats.Struck)
		fmt.Printf("  completed:     %d\n", stats.Completed)
		fmt.Printf("  expired:       %d\n", stats.Expired)
		if len(stats.Times) > 0 {
			fmt.Printf("  first: %s  last: %s\n",
				stats.Times[0].Format("15:04"),
				stats.Times[len(stats.Times)-1].Format("15:04"))
		}
		return nil
	},
}

func init() {
	recapCmd.Flags().StringVar(&recapDate, "date", "", "effective date to summarise (YYYY-MM-DD)")
	rootCmd.AddCommand(recapCmd)
}
