package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recent test results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, cleanup, err := openSession(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer cleanup()

		subject, _ := cmd.Flags().GetString("subject")
		limit, _ := cmd.Flags().GetInt("limit")

		if subject != "" {
			perf, err := sess.Performance(ctx, subject)
			if err != nil {
				return err
			}
			if len(perf) == 0 {
				fmt.Printf("No results in %s yet.\n", subject)
				return nil
			}
			fmt.Printf("%s — per level\n", subject)
			fmt.Printf("%-8s  %8s  %8s  %8s  %10s\n", "Level", "Attempts", "Mean %", "Best %", "Accuracy")
			fmt.Println(strings.Repeat("─", 50))
			for _, p := range perf {
				fmt.Printf("%-8s  %8d  %8.1f  %8.1f  %9.0f%%\n",
					p.Level, p.Attempts, p.MeanPercentage, p.BestPercentage, p.MeanAccuracy*100)
			}
			return nil
		}

		results, err := sess.Results(ctx, limit)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No tests taken yet.")
			return nil
		}

		fmt.Printf("%-19s  %-14s  %-6s  %-9s  %6s\n", "Completed", "Subject", "Level", "Marks", "%")
		fmt.Println(strings.Repeat("─", 64))
		for _, r := range results {
			fmt.Printf("%-19s  %-14s  %-6s  %4d/%-4d  %5.1f\n",
				r.CompletedAt.Local().Format("2006-01-02 15:04:05"),
				r.Subject, r.Level, r.ObtainedMarks, r.TotalMarks, r.Percentage)
		}
		return nil
	},
}

func init() {
	resultsCmd.Flags().StringP("subject", "s", "", "Show per-level performance for one subject")
	resultsCmd.Flags().IntP("limit", "n", 10, "Number of results to show")
}
