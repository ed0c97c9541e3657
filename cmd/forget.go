package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Delete the locally cached progress",
	Long:  "Delete the locally cached progress. Progress on the backend is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.open(cmd); err != nil {
			return err
		}
		if err := a.reconciler.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Local progress cache cleared.")
		return nil
	},
}
