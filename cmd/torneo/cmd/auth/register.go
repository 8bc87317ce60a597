package auth

import (
	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/internal/cli"
	"github.com/jrsteele09/torneo-pingpong/routes"
	"github.com/jrsteele09/torneo-pingpong/users"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	firstName string
	lastName  string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cli.Open(cmd, routes.PathRegister)
		if err != nil {
			return err
		}
		for _, field := range []struct {
			value  *string
			label  string
			secret bool
		}{
			{&firstName, "First name", false},
			{&lastName, "Last name", false},
			{&email, "Email", false},
			{&password, "Password", true},
		} {
			if err := prompt(field.value, field.label, field.secret); err != nil {
				return err
			}
		}

		reg := users.Registration{FirstName: firstName, LastName: lastName, Email: email, Password: password}
		if err := a.Register(cmd.Context(), reg); err != nil {
			return err
		}
		a.Sessions.Wait()

		pterm.Success.Printf("Welcome, %s! Join the tournament with: torneo enroll\n", reg.FirstName)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
}
