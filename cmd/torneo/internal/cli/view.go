package cli

import (
	"fmt"

	"github.com/jrsteele09/torneo-pingpong/app"
	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
	"github.com/jrsteele09/torneo-pingpong/routes"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Open navigates to the view at path. A guard redirect is reported and
// returned as an error so the command stops.
func Open(cmd *cobra.Command, path string) (*app.App, error) {
	a := MustFromContext(cmd.Context())

	route, err := a.Open(path)
	if err != nil {
		return nil, err
	}
	if route.Path == path {
		return a, nil
	}

	switch route.Path {
	case routes.PathLogin:
		pterm.Warning.Println("Sign in first: torneo auth login")
		return nil, apperrors.Wrapf(apperrors.ErrNotAuthenticated, "%s", path)
	case routes.PathDashboard:
		if path == routes.PathLogin || path == routes.PathRegister {
			pterm.Warning.Println("Already signed in, log out first: torneo auth logout")
			return nil, fmt.Errorf("%s: already signed in", path)
		}
		pterm.Warning.Println("Only tournament organizers can manage matches: torneo organize")
		return nil, apperrors.Wrapf(apperrors.ErrForbidden, "%s", path)
	}
	return nil, fmt.Errorf("%s: redirected to %s", path, route.Path)
}
