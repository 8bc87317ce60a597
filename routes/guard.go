package routes

import "github.com/jrsteele09/torneo-pingpong/users"

// Requirement is the minimum authorization a view declares.
type Requirement int

const (
	// Public views are reachable by anyone.
	Public Requirement = iota
	// Authenticated views need an identity.
	Authenticated
	// Organizer views need an identity and the organizer flag.
	Organizer
	// GuestOnly views (login, register) send signed-in users to the
	// dashboard instead.
	GuestOnly
)

func (r Requirement) String() string {
	switch r {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	case Organizer:
		return "authenticated+organizer"
	case GuestOnly:
		return "guest"
	}
	return "unknown"
}

// Decision is the outcome of a guard check: allow, or go to Redirect.
type Decision struct {
	Allow    bool
	Redirect string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(path string) Decision {
	return Decision{Redirect: path}
}

// Check decides whether a view with requirement req may be shown.
//
// An organizer view is allowed while the profile is still loading so the
// client does not bounce before the fetch resolves; the view re-checks
// once the profile arrives (see Router.Recheck).
func Check(identity bool, profile *users.Profile, req Requirement) Decision {
	switch req {
	case Public:
		return allow()
	case GuestOnly:
		if identity {
			return redirect(PathDashboard)
		}
		return allow()
	}

	if !identity {
		return redirect(PathLogin)
	}
	if req == Organizer && profile != nil && !profile.Organizer {
		return redirect(PathDashboard)
	}
	return allow()
}
