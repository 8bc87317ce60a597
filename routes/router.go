package routes

import (
	"fmt"
	"sync"

	"github.com/jrsteele09/torneo-pingpong/sessions"
	"github.com/rs/zerolog/log"
)

// maxRedirects stops a misconfigured table from looping forever.
const maxRedirects = 4

var _ sessions.Navigator = (*Router)(nil)

// Router tracks the current view and runs the guard on every navigation.
type Router struct {
	table   Table
	lock    sync.RWMutex
	current string
	history []string
}

func NewRouter(table Table) *Router {
	return &Router{table: table, current: PathRoot}
}

// GoTo records a programmatic navigation without consulting the guard.
// The session manager uses it after login and logout.
func (r *Router) GoTo(path string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.current = path
	r.history = append(r.history, path)
}

// Current returns the path of the active view.
func (r *Router) Current() string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.current
}

// History returns every path visited, oldest first.
func (r *Router) History() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]string(nil), r.history...)
}

// CurrentRoute returns the declaration of the active view.
func (r *Router) CurrentRoute() (Route, error) {
	return r.table.Lookup(r.Current())
}

// IsActive reports whether path is the current view, for link highlighting.
func (r *Router) IsActive(path string) bool {
	return r.Current() == path
}

// Resolve runs the guard for path against s, following redirects, and
// returns the view that would be shown. "/" resolves to the dashboard or
// the login page depending on identity.
func (r *Router) Resolve(path string, s sessions.Session) (Route, error) {
	for i := 0; i <= maxRedirects; i++ {
		if path == PathRoot {
			path = PathLogin
			if s.Authenticated() {
				path = PathDashboard
			}
		}

		route, err := r.table.Lookup(path)
		if err != nil {
			return Route{}, err
		}

		decision := Check(s.Authenticated(), s.Profile, route.Requirement)
		if decision.Allow {
			return route, nil
		}
		log.Debug().Str("from", path).Str("to", decision.Redirect).Str("requirement", route.Requirement.String()).Msg("Route guard redirect")
		path = decision.Redirect
	}
	return Route{}, fmt.Errorf("too many redirects resolving %s", path)
}

// Navigate resolves path and makes the resulting view current.
func (r *Router) Navigate(path string, s sessions.Session) (Route, error) {
	route, err := r.Resolve(path, s)
	if err != nil {
		return Route{}, err
	}
	r.GoTo(route.Path)
	return route, nil
}

// Recheck re-runs the guard for the current view, for views that must
// react once the profile has loaded. It returns the new route when the
// client had to move.
func (r *Router) Recheck(s sessions.Session) (Route, bool, error) {
	current := r.Current()
	route, err := r.Navigate(current, s)
	if err != nil {
		return Route{}, false, err
	}
	return route, route.Path != current, nil
}

// Link is a navigation entry of the menu.
type Link struct {
	Path   string
	Title  string
	Active bool
}

// Links lists the menu entries visible to s: the tournament views when
// signed in, with management only for organizers, or login and register.
func (r *Router) Links(s sessions.Session) []Link {
	paths := []string{PathLogin, PathRegister}
	if s.Authenticated() {
		paths = []string{PathDashboard, PathParticipants, PathMatches, PathStandings}
		if s.Profile != nil && s.Profile.Organizer {
			paths = append(paths, PathManage)
		}
	}

	current := r.Current()
	links := make([]Link, 0, len(paths))
	for _, p := range paths {
		route, err := r.table.Lookup(p)
		if err != nil {
			continue
		}
		links = append(links, Link{Path: route.Path, Title: route.Title, Active: route.Path == current})
	}
	return links
}
