package sessions

import (
	"github.com/jrsteele09/torneo-pingpong/token"
	"github.com/jrsteele09/torneo-pingpong/users"
)

// Session is a snapshot of who is signed in. Token and Claims are always
// set or cleared together; Profile is only ever set alongside them.
type Session struct {
	Claims  *token.Claims  // Identity decoded from Token, nil when signed out
	Profile *users.Profile // Server profile, nil until fetched or supplied at login
	Token   string         // Bearer token
}

// Authenticated reports whether an identity is present.
func (s Session) Authenticated() bool {
	return s.Claims != nil
}

func (s Session) Empty() bool {
	return s.Claims == nil && s.Profile == nil && s.Token == ""
}

// UserID is the subject of the current identity, "" when signed out.
func (s Session) UserID() users.ID {
	return users.ID(s.Claims.Subject())
}

// clone deep copies the pointers so callers cannot mutate manager state.
func (s Session) clone() Session {
	out := Session{Token: s.Token}
	if s.Claims != nil {
		c := *s.Claims
		out.Claims = &c
	}
	if s.Profile != nil {
		p := *s.Profile
		out.Profile = &p
	}
	return out
}
