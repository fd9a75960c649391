package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the account and all of its data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes the account, profile, history and results; pass --yes to confirm")
		}

		username, password, err := credentials(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		acct, err := s.Authenticate(ctx, username, password)
		if err != nil {
			return err
		}
		if err := s.DeleteAccount(ctx, acct.ID); err != nil {
			return err
		}
		fmt.Println("Account deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
