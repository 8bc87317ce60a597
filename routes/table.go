package routes

import (
	"fmt"

	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
)

// View paths
const (
	PathRoot         = "/"
	PathLogin        = "/login"
	PathRegister     = "/register"
	PathDashboard    = "/dashboard"
	PathParticipants = "/partecipanti"
	PathMatches      = "/incontri"
	PathStandings    = "/classifica"
	PathManage       = "/gestione-incontri"
)

// Route declares a view and the authorization it needs.
type Route struct {
	Path        string
	Title       string
	Requirement Requirement
}

// Table is the client's route declarations keyed by path.
type Table map[string]Route

// DefaultTable mirrors the views of the tournament client.
func DefaultTable() Table {
	return NewTable(
		Route{Path: PathLogin, Title: "Login", Requirement: GuestOnly},
		Route{Path: PathRegister, Title: "Register", Requirement: GuestOnly},
		Route{Path: PathDashboard, Title: "Dashboard", Requirement: Authenticated},
		Route{Path: PathParticipants, Title: "Partecipanti", Requirement: Authenticated},
		Route{Path: PathMatches, Title: "Incontri", Requirement: Authenticated},
		Route{Path: PathStandings, Title: "Classifica", Requirement: Authenticated},
		Route{Path: PathManage, Title: "Gestione", Requirement: Organizer},
	)
}

func NewTable(routes ...Route) Table {
	t := make(Table, len(routes))
	for _, r := range routes {
		t[r.Path] = r
	}
	return t
}

// Lookup returns the route declared for path.
func (t Table) Lookup(path string) (Route, error) {
	r, ok := t[path]
	if !ok {
		return Route{}, fmt.Errorf("%w: route %s", apperrors.ErrNotFound, path)
	}
	return r, nil
}
