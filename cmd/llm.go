package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded model requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		logs, err := s.ListLLMRequests(context.Background(), limit)
		if err != nil {
			return err
		}
		if len(logs) == 0 {
			fmt.Println("No model requests recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-12s  %-24s  %-7s  %s\n",
			"ID", "Timestamp", "Provider", "Purpose", "Model", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 92))
		for _, l := range logs {
			if purpose != "" && l.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !l.Success {
				ok = "✗"
			}
			model := l.Model
			if len(model) > 24 {
				model = model[:24]
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-12s  %-24s  %-7d  %s\n",
				l.ID,
				l.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				l.Provider, l.Purpose, model,
				l.Duration.Milliseconds(), ok)
		}
		return nil
	},
}

func init() {
	llmCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (translate, lesson, doubt, problems, assessment)")
}
