package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson <topic>",
	Short: "Generate a lesson on a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, cleanup, err := openSession(ctx, cmd, true)
		if err != nil {
			return err
		}
		defer cleanup()

		subject, _ := cmd.Flags().GetString("subject")
		topic := strings.Join(args, " ")

		lesson, err := sess.Lesson(ctx, topic, subject)
		if err != nil {
			return err
		}

		fmt.Printf("Lesson: %s (%s, class %d, difficulty %d/10)\n\n", lesson.Topic, lesson.Subject, lesson.Class, lesson.Difficulty)
		fmt.Println(lesson.Content)
		if len(lesson.Sources) > 0 {
			fmt.Printf("\nSources: %s\n", strings.Join(lesson.Sources, "; "))
		}
		return nil
	},
}

func init() {
	lessonCmd.Flags().StringP("subject", "s", "Science", "Subject of the lesson")
}
