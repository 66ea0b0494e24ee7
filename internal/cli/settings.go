package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

var (
	settingsResetHour int
	settingsTimezone  string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the reset hour and timezone",
	Long: `Show the current temporal settings, or change them with flags.
Changes apply to subsequent classifications immediately; past ledger
entries keep the dates they were stamped with.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		current := Engine.Settings()
		if !cmd.Flags().Changed("reset-hour") && !cmd.Flags().Changed("timezone") {
			fmt.Printf("reset hour: %02d:00\ntimezone:   %s\n", current.ResetHour, current.Timezone)
			return nil
		}

		next := current
		if cmd.Flags().Changed("reset-hour") {
			next.ResetHour = settingsResetHour
		}
		if cmd.Flags().Changed("timezone") {
			next.Timezone = settingsTimezone
		}

		if err := Engine.UpdateSettings(next); err != nil {
			return err
		}
		if SettingsStore != nil {
			if err := SettingsStore.Save(next); err != nil {
				return err
			}
		}

		fmt.Printf("reset hour: %02d:00\ntimezone:   %s\n", next.ResetHour, next.Timezone)
		return nil
	},
}

func init() {
	settingsCmd.Flags().IntVar(&settingsResetHour, "reset-hour", models.DefaultResetHour, "hour of day the personal day rolls over (0-23)")
	settingsCmd.Flags().StringVar(&settingsTimezone, "timezone", "", "IANA timezone name (unknown zones fall back to UTC)")
	rootCmd.AddCommand(settingsCmd)
}
