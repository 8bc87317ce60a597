package auth

import (
	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/internal/cli"
	"github.com/jrsteele09/torneo-pingpong/routes"
	"github.com/jrsteele09/torneo-pingpong/users"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cli.Open(cmd, routes.PathLogin)
		if err != nil {
			return err
		}
		if err := prompt(&email, "Email", false); err != nil {
			return err
		}
		if err := prompt(&password, "Password", true); err != nil {
			return err
		}

		if err := a.Login(cmd.Context(), users.Credentials{Email: email, Password: password}); err != nil {
			return err
		}
		a.Sessions.Wait()

		s := a.Sessions.Snapshot()
		pterm.Success.Printf("Signed in as %s\n", s.Profile.FullName())
		return nil
	},
}
