package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shikshamitra/shikshamitra/internal/i18n"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak, XP and test statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, cleanup, err := openSession(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer cleanup()

		// Labels follow the profile language where a translation exists.
		lang := "English"
		if p, err := sess.Profile(ctx); err == nil && p != nil && p.Language != "" {
			lang = p.Language
		}

		st := sess.Stats()
		fmt.Printf("%s: %d %s (longest %d)\n",
			i18n.Resolve("learning_streak", lang), st.CurrentStreak, i18n.Resolve("days", lang), st.LongestStreak)
		fmt.Printf("XP:      %d (level %d)\n", st.TotalXP, st.Level)
		if len(st.Badges) > 0 {
			fmt.Printf("Badges:  %s\n", strings.Join(st.Badges, ", "))
		}

		overall, err := sess.Overall(ctx)
		if err != nil {
			return err
		}
		if overall.TotalTests == 0 {
			fmt.Println("\nNo tests taken yet.")
			return nil
		}
		fmt.Printf("\nTests:   %d taken, %d passed\n", overall.TotalTests, overall.PassedTests)
		fmt.Printf("Scores:  %.1f%% average, %.1f%% best, across %d subject(s)\n",
			overall.MeanPercentage, overall.BestPercentage, overall.SubjectsTested)
		return nil
	},
}
