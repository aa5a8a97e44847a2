package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSignupCommand() *cobra.Command {
	var dir string
	var user string
	var password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			if err := p.store.CreateAccount(user, password); err != nil {
				return err
			}
			p.recordMutation(user, "signup", "")
			fmt.Printf("Account %q created\n", user)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&user, "user", "", "username (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newBalanceCommand() *cobra.Command {
	var auth authFlags

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, acct, err := auth.open()
			if err != nil {
				return err
			}
			fmt.Printf("Balance: %s\n", acct.Balance.StringFixed(2))
			return nil
		},
	}

	auth.register(cmd)

	return cmd
}
