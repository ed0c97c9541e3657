package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daxvengers/daxvengers/internal/api"
	"github.com/daxvengers/daxvengers/internal/ui/components"
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List missions",
	RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
		missions, err := a.progress.LoadMissions(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), components.MissionList(missions, a.progress.Record(), barWidth))
		return nil
	}),
}

var lessonsCmd = &cobra.Command{
	Use:   "lessons [mission]",
	Short: "List lessons with their lock state",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		mission := ""
		if len(args) == 1 {
			mission = args[0]
		}
		lessons, err := a.progress.LoadLessons(cmd.Context(), mission)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if mission == "" {
			mission = a.progress.Record().MissionID
		}
		if m, err := a.client.Mission(cmd.Context(), mission); err == nil {
			fmt.Fprintln(out, m.Name)
		} else {
			a.log.Debug("fetch mission", "mission", mission, "error", err)
		}
		fmt.Fprint(out, components.LessonList(lessons, a.progress.Record()))
		return nil
	}),
}

var lessonCmd = &cobra.Command{
	Use:   "lesson <id>",
	Short: "Show a lesson's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("lesson must be a number: %w", err)
		}
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		l, err := a.client.Lesson(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), components.LessonDetail(l))
		return nil
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top players",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := a.client.Leaderboard(cmd.Context(), limit)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), components.Leaderboard(entries))
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		h, err := a.client.Health(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s: %s (%d missions, %d lessons)\n", h.Service, h.Version, h.Status, h.TotalMissions, h.TotalLessons)
		if err := api.CheckCompatible(h); err != nil {
			return fmt.Errorf("incompatible backend: %w", err)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().Int("limit", 10, "Number of players to show")
}
