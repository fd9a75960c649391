package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <topic>",
	Short: "Generate practice problems on a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, cleanup, err := openSession(ctx, cmd, true)
		if err != nil {
			return err
		}
		defer cleanup()

		subject, _ := cmd.Flags().GetString("subject")
		count, _ := cmd.Flags().GetInt("count")
		showAnswers, _ := cmd.Flags().GetBool("answers")
		topic := strings.Join(args, " ")

		p, err := sess.Profile(ctx)
		if err != nil {
			return err
		}
		class := 5
		if p != nil {
			class = p.ClassNumber
		}

		problems := sess.Agent().GenerateProblems(ctx, topic, subject, class, count)
		for i, prob := range problems {
			fmt.Printf("%d. %s\n", i+1, prob.Question)
			fmt.Printf("   Hint: %s\n", prob.Hint)
			if showAnswers {
				fmt.Printf("   Answer: %s\n", prob.Answer)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	practiceCmd.Flags().StringP("subject", "s", "Mathematics", "Subject")
	practiceCmd.Flags().IntP("count", "n", 3, "Number of problems")
	practiceCmd.Flags().Bool("answers", false, "Print the answers too")
}
