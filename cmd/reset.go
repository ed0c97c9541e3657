package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe progress for the current mission",
	RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("refusing to reset without --yes")
		}
		mission := a.progress.Record().MissionID
		if err := a.progress.Reset(cmd.Context(), mission); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Progress for %s reset.\n", mission)
		return nil
	}),
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
