package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daxvengers/daxvengers/internal/ui/components"
)

var xpCmd = &cobra.Command{
	Use:   "xp <amount>",
	Short: "Adjust XP locally (negative amounts subtract)",
	Long:  "Adjust the cached XP total. The change is not sent to the backend and is replaced by the backend's total on the next successful load.",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("amount must be a number: %w", err)
		}
		if err := a.progress.AddXP(amount); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), components.Summary(a.progress.Record(), barWidth))
		return nil
	}),
}
