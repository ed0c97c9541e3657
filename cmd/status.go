package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daxvengers/daxvengers/internal/ui/components"
)

const barWidth = 40

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show level, XP and streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func runStatus(cmd *cobra.Command) error {
	return withApp(func(cmd *cobra.Command, a *app, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), components.Summary(a.progress.Record(), barWidth))
		return nil
	})(cmd, nil)
}
