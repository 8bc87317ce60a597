package token

import "time"

// Claims is the part of a bearer token the client reads locally. It is a
// hint about who is signed in, never proof: the API re-checks the token on
// every request.
type Claims struct {
	UserID    string    // "id" claim, falling back to "sub"
	IssuedAt  time.Time // zero when the token has no iat
	ExpiresAt time.Time // zero when the token has no exp
}

// Expired reports whether the exp claim lies before now. The session layer
// does not act on it; expiry is discovered when the API answers 401.
func (c *Claims) Expired(now time.Time) bool {
	if c == nil || c.ExpiresAt.IsZero() {
		return false
	}
	return now.After(c.ExpiresAt)
}

// Subject returns the user id or "" for a nil receiver.
func (c *Claims) Subject() string {
	if c == nil {
		return ""
	}
	return c.UserID
}
