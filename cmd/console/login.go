package main

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Вход оператора, токен сохраняется в файл",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("--email is required")
			}

			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			resp, err := opts.client().Login(cmd.Context(), email, string(raw))
			if err != nil {
				return err
			}

			if err := opts.tokenSource().Save(resp.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Printf("logged in, token valid until %s\n", resp.ExpiresAt.Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email оператора")
	return cmd
}
