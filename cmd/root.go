package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daxvengers/daxvengers/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "daxvengers",
	Short: "Learn DAX one mission at a time",
	Long:  "DAXVengers tracks lesson progress, XP and daily streaks against the DAXVengers backend, with an offline cache.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite cache file (overrides DAXVENGERS_DB env var)")
	flags.String("api", "", "Backend base URL (overrides DAXVENGERS_API_URL)")
	flags.String("user", "", "User id to record progress for (overrides DAXVENGERS_USER_ID)")
	flags.String("mission", "", "Mission id (overrides DAXVENGERS_MISSION)")
	flags.String("env-file", ".env", "Optional dotenv file")
	flags.BoolP("verbose", "v", false, "Log every backend request")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(xpCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(missionsCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(forgetCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
