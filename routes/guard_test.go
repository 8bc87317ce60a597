package routes_test

import (
	"testing"

	"github.com/jrsteele09/torneo-pingpong/routes"
	"github.com/jrsteele09/torneo-pingpong/users"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	player := &users.Profile{ID: "1"}
	organizer := &users.Profile{ID: "2", Organizer: true}

	allow := routes.Decision{Allow: true}
	toLogin := routes.Decision{Redirect: routes.PathLogin}
	toDashboard := routes.Decision{Redirect: routes.PathDashboard}

	tests := []struct {
		name     string
		identity bool
		profile  *users.Profile
		req      routes.Requirement
		want     routes.Decision
	}{
		{"public, signed out", false, nil, routes.Public, allow},
		{"public, profile loading", true, nil, routes.Public, allow},
		{"public, player", true, player, routes.Public, allow},
		{"public, organizer", true, organizer, routes.Public, allow},

		{"authenticated, signed out", false, nil, routes.Authenticated, toLogin},
		{"authenticated, profile loading", true, nil, routes.Authenticated, allow},
		{"authenticated, player", true, player, routes.Authenticated, allow},
		{"authenticated, organizer", true, organizer, routes.Authenticated, allow},

		{"organizer, signed out", false, nil, routes.Organizer, toLogin},
		{"organizer, profile loading", true, nil, routes.Organizer, allow},
		{"organizer, player", true, player, routes.Organizer, toDashboard},
		{"organizer, organizer", true, organizer, routes.Organizer, allow},

		{"guest, signed out", false, nil, routes.GuestOnly, allow},
		{"guest, profile loading", true, nil, routes.GuestOnly, toDashboard},
		{"guest, organizer", true, organizer, routes.GuestOnly, toDashboard},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, routes.Check(tc.identity, tc.profile, tc.req))
		})
	}
}

func TestRequirement_String(t *testing.T) {
	require.Equal(t, "public", routes.Public.String())
	require.Equal(t, "authenticated", routes.Authenticated.String())
	require.Equal(t, "authenticated+organizer", routes.Organizer.String())
	require.Equal(t, "guest", routes.GuestOnly.String())
	require.Equal(t, "unknown", routes.Requirement(42).String())
}
