package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shikshamitra/shikshamitra/internal/curriculum"
	"github.com/shikshamitra/shikshamitra/internal/quiz"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Take a scored test",
	Long: "Take a scored test in a subject and level. Without --answers the questions\n" +
		"are listed; with --answers (comma-separated option indexes, in question\n" +
		"order) the test is scored, saved and reviewed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, cleanup, err := openSession(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer cleanup()

		subject, _ := cmd.Flags().GetString("subject")
		level, _ := cmd.Flags().GetString("level")
		language, _ := cmd.Flags().GetString("language")
		answersArg, _ := cmd.Flags().GetString("answers")

		// Default the question language to the profile language.
		if language == "" {
			language = "en"
			if p, err := sess.Profile(ctx); err == nil && p != nil {
				language = curriculum.LanguageCode(p.Language)
			}
		}

		q, err := sess.StartTest()
		if err != nil {
			return err
		}
		if err := q.Start(subject, level, language); err != nil {
			return err
		}
		questions := q.Questions()
		_, levelTag, _ := q.Selection()

		if answersArg == "" {
			fmt.Printf("%s, %s — %d questions\n\n", subject, levelTag, len(questions))
			for i, question := range questions {
				fmt.Printf("%d. [%d marks] %s\n", i+1, question.Marks, question.TextIn(language))
				for j, opt := range question.Options {
					fmt.Printf("   %d) %s\n", j, opt)
				}
				fmt.Println()
			}
			fmt.Println("Answer with: shiksha test --subject ... --level ... --answers 0,2,...")
			return nil
		}

		chosen, err := parseAnswers(answersArg, len(questions))
		if err != nil {
			return err
		}
		for i, question := range questions {
			if err := q.RecordAnswer(question.ID, chosen[i]); err != nil {
				return fmt.Errorf("question %d: %w", i+1, err)
			}
		}

		result, err := sess.SubmitTest(ctx, q)
		var persistErr *quiz.PersistError
		if errors.As(err, &persistErr) {
			fmt.Printf("warning: result could not be saved: %v\n\n", persistErr)
		} else if err != nil {
			return err
		}

		fmt.Printf("Score: %d/%d marks (%.1f%%), %d of %d correct\n\n",
			result.ObtainedMarks, result.TotalMarks, result.Percentage,
			result.CorrectCount, result.TotalQuestions)

		review, err := q.Review()
		if err != nil {
			return err
		}
		for i, r := range review {
			mark := "✗"
			if r.IsCorrect {
				mark = "✓"
			}
			fmt.Printf("%s %d. %s\n", mark, i+1, r.Text)
			if !r.IsCorrect {
				fmt.Printf("    your answer: %s\n", optionText(r.Options, r.Chosen))
				fmt.Printf("    correct:     %s\n", optionText(r.Options, r.Correct))
			}
		}
		return nil
	},
}

func parseAnswers(arg string, want int) ([]int, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("need %d answers, got %d", want, len(parts))
	}
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("answer %d: %q is not a number", i+1, p)
		}
		out[i] = n
	}
	return out, nil
}

func optionText(options []string, idx int) string {
	if idx < 0 || idx >= len(options) {
		return "(unanswered)"
	}
	return options[idx]
}

func init() {
	testCmd.Flags().StringP("subject", "s", "Mathematics", "Subject")
	testCmd.Flags().StringP("level", "l", "1", "Difficulty level (1-3)")
	testCmd.Flags().String("language", "", "Question language code (default: profile language)")
	testCmd.Flags().String("answers", "", "Comma-separated option indexes, in question order")
}
