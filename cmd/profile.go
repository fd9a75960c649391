package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shikshamitra/shikshamitra/internal/curriculum"
	"github.com/shikshamitra/shikshamitra/internal/i18n"
	"github.com/shikshamitra/shikshamitra/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the learner profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save name, class, language and subjects",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, cleanup, err := openSession(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer cleanup()

		name, _ := cmd.Flags().GetString("name")
		class, _ := cmd.Flags().GetInt("class")
		language, _ := cmd.Flags().GetString("language")
		subjects, _ := cmd.Flags().GetStringSlice("subjects")
		dob, _ := cmd.Flags().GetString("dob")
		phone, _ := cmd.Flags().GetString("phone")
		parentPhone, _ := cmd.Flags().GetString("parent-phone")

		if err := sess.SaveProfile(ctx, store.Profile{
			FullName:    name,
			ClassNumber: class,
			Language:    language,
			Subjects:    subjects,
			DateOfBirth: dob,
			PhoneNumber: phone,
			ParentPhone: parentPhone,
		}); err != nil {
			return err
		}

		fmt.Printf("Profile saved: class %d, %s, subjects: %s\n", class, language, strings.Join(subjects, ", "))
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, cleanup, err := openSession(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer cleanup()

		p, err := sess.Profile(ctx)
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Println("No profile yet. Run `shiksha profile set` to create one.")
			return nil
		}

		fmt.Printf("Name:     %s\n", p.FullName)
		fmt.Printf("Class:    %d\n", p.ClassNumber)
		fmt.Printf("%s: %s\n", i18n.Resolve("preferred_language", p.Language), p.Language)
		fmt.Printf("Subjects: %s\n", strings.Join(p.Subjects, ", "))
		fmt.Printf("\nSubjects offered in class %d: %s\n",
			p.ClassNumber, strings.Join(curriculum.SubjectsForClass(p.ClassNumber), ", "))
		return nil
	},
}

func init() {
	profileSetCmd.Flags().String("name", "", "Full name")
	profileSetCmd.Flags().Int("class", 0, "Class number (1-12)")
	profileSetCmd.Flags().String("language", "English", "Preferred language")
	profileSetCmd.Flags().StringSlice("subjects", nil, "Subjects, comma separated")
	profileSetCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	profileSetCmd.Flags().String("phone", "", "Phone number")
	profileSetCmd.Flags().String("parent-phone", "", "Parent's phone number")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
}
