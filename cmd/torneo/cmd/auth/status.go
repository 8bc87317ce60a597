package auth

import (
	"time"

	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/internal/cli"
	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := cli.MustFromContext(cmd.Context())
		s := a.Sessions.Snapshot()
		if !s.Authenticated() {
			return apperrors.ErrNotAuthenticated
		}

		pterm.DefaultSection.Println("Authentication Status")
		pterm.Info.Printf("User ID: %s\n", s.UserID())
		pterm.Info.Printf("API: %s\n", a.API.BaseURL())

		// Expiry is informational: the server decides when a token stops working.
		if exp := s.Claims.ExpiresAt; !exp.IsZero() {
			if s.Claims.Expired(time.Now()) {
				pterm.Warning.Printf("Token expired at %s, the server will ask you to sign in again\n", exp.Format(time.RFC1123))
			} else {
				pterm.Info.Printf("Token expires at %s\n", exp.Format(time.RFC1123))
			}
		}

		if s.Profile == nil {
			pterm.Warning.Println("Profile could not be loaded")
			return nil
		}
		pterm.Info.Printf("Name: %s\n", s.Profile.FullName())
		pterm.Info.Printf("Email: %s\n", s.Profile.Email)
		return nil
	},
}
