package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate <text>",
	Short: "Translate text into a supported language",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, cleanup, err := openSession(ctx, cmd, true)
		if err != nil {
			return err
		}
		defer cleanup()

		target, _ := cmd.Flags().GetString("to")
		text := strings.Join(args, " ")

		fmt.Println(sess.Agent().Translate(ctx, text, target))
		return nil
	},
}

func init() {
	translateCmd.Flags().String("to", "Hindi", "Target language")
}
