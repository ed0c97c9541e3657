package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daxvengers/daxvengers/internal/api"
	"github.com/daxvengers/daxvengers/internal/ui/components"
)

var completeCmd = &cobra.Command{
	Use:   "complete <lesson> <xp>",
	Short: "Record a completed lesson",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		lessonID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("lesson must be a number: %w", err)
		}
		xp, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("xp must be a number: %w", err)
		}
		if !a.progress.IsLessonUnlocked(lessonID) {
			return fmt.Errorf("lesson %d is locked; complete lesson %d first", lessonID, lessonID-1)
		}

		res, err := a.progress.CompleteLesson(cmd.Context(), lessonID, xp)
		out := cmd.OutOrStdout()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Saved locally; the backend did not confirm:", err)
			fmt.Fprintln(out, components.Summary(a.progress.Record(), barWidth))
			return err
		}

		if res.Message != "" {
			fmt.Fprintln(out, res.Message)
		}
		rec := a.progress.Record()
		fmt.Fprintln(out, components.Summary(rec, barWidth))

		next, err := a.client.NextLesson(cmd.Context(), lessonID, rec.MissionID)
		switch {
		case api.IsNotFound(err):
			fmt.Fprintln(out, "Mission complete!")
		case err != nil:
			a.log.Warn("fetch next lesson", "lesson", lessonID, "error", err)
		default:
			fmt.Fprintf(out, "Next: %d. %s\n", next.ID, next.Title)
		}
		return nil
	}),
}
