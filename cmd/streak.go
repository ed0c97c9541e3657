package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Re-evaluate the daily streak",
	RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
		before := a.progress.Record().StreakDays
		if err := a.progress.UpdateStreak(); err != nil {
			return err
		}
		after := a.progress.Record().StreakDays
		fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d day(s) (was %d)\n", after, before)
		return nil
	}),
}
