package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shikshamitra/shikshamitra/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "shiksha",
	Short: "AI tutor for rural students",
	Long: "Shiksha Mitra — an AI tutoring companion for school students in rural India:\n" +
		"lessons, doubts and tests in the student's own language, with streaks and XP\n" +
		"to keep daily practice going.",
}

func Execute() error {
	// A .env next to the binary is a convenience for local setups; its
	// absence is not an error.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SHIKSHA_DB env var)")
	rootCmd.PersistentFlags().StringP("user", "u", "", "Username")
	rootCmd.PersistentFlags().StringP("password", "p", "", "Password (or set SHIKSHA_PASSWORD)")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag first, then
// SHIKSHA_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}
