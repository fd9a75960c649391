package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shikshamitra/shikshamitra/internal/app"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a doubt and get a step-by-step answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, cleanup, err := openSession(ctx, cmd, true)
		if err != nil {
			return err
		}
		defer cleanup()

		subject, _ := cmd.Flags().GetString("subject")
		question := strings.Join(args, " ")

		expl, err := sess.AskDoubt(ctx, subject, question)
		if err != nil {
			return err
		}

		fmt.Println(expl.Text)
		fmt.Printf("\n+%d XP — total %d (level %d)\n",
			app.DoubtXP, sess.Stats().TotalXP, sess.Stats().Level)
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("subject", "s", "Science", "Subject of the doubt")
}
