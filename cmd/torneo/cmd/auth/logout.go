package auth

import (
	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/internal/cli"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := cli.MustFromContext(cmd.Context())
		wasSignedIn := a.Sessions.Snapshot().Authenticated()

		a.Logout()

		if wasSignedIn {
			pterm.Success.Println("Logged out successfully")
		} else {
			pterm.Info.Println("Not signed in")
		}
		return nil
	},
}
