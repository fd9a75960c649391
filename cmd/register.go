package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shikshamitra/shikshamitra/internal/app"
	"github.com/shikshamitra/shikshamitra/internal/catalog"
	"github.com/shikshamitra/shikshamitra/internal/llm"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, password, err := credentials(cmd)
		if err != nil {
			return err
		}
		email, _ := cmd.Flags().GetString("email")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		a := app.New(s, catalog.Default(), llm.NewMockProvider())
		acct, err := a.Register(context.Background(), username, password, email)
		if err != nil {
			return err
		}

		fmt.Printf("Welcome, %s! Your account is ready.\n", acct.Username)
		fmt.Println("Next: run `shiksha profile set` to pick your class, language and subjects.")
		return nil
	},
}

func init() {
	registerCmd.Flags().String("email", "", "Email address (optional)")
}
