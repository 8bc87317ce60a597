package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for auth operations
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Commands for signing up, signing in and out, and checking the session.`,
}

var (
	email    string
	password string
)

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(registerCmd)

	AuthCmd.PersistentFlags().StringVar(&email, "email", "", "Account email")
	AuthCmd.PersistentFlags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
}

// prompt asks for value when the flag was left empty.
func prompt(value *string, label string, secret bool) error {
	if *value != "" {
		return nil
	}
	input := pterm.DefaultInteractiveTextInput
	if secret {
		input = *input.WithMask("*")
	}
	result, err := input.Show(label)
	if err != nil {
		return err
	}
	*value = result
	return nil
}
