package tournament

import (
	"unicode"
	"unicode/utf8"

	"github.com/jrsteele09/torneo-pingpong/users"
)

// Participant is an enrolled player as listed by GET /api/partecipanti.
type Participant struct {
	ID        users.ID `json:"id"`
	FirstName string   `json:"nome"`
	LastName  string   `json:"cognome"`
	Email     string   `json:"email"`
}

func (p Participant) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Initials is the avatar text: first letter of each name, upper-cased.
func (p Participant) Initials() string {
	return initial(p.FirstName) + initial(p.LastName)
}

func initial(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
