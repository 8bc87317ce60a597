package tournament

import (
	"fmt"
	"time"

	"github.com/jrsteele09/torneo-pingpong/users"
)

// DateLayout is the wire and input format of match dates.
const DateLayout = "2006-01-02"

// Match is a scheduled or played game between two participants.
type Match struct {
	ID         users.ID `json:"id"`
	PlayerAID  users.ID `json:"partecipante_a_id"`
	PlayerBID  users.ID `json:"partecipante_b_id"`
	FirstNameA string   `json:"nome_a"`
	LastNameA  string   `json:"cognome_a"`
	FirstNameB string   `json:"nome_b"`
	LastNameB  string   `json:"cognome_b"`
	Date       string   `json:"data"`
	ScoreA     *int     `json:"punti_a"`
	ScoreB     *int     `json:"punti_b"`
	Played     bool     `json:"giocato"`
}

func (m Match) PlayerA() string {
	return m.FirstNameA + " " + m.LastNameA
}

func (m Match) PlayerB() string {
	return m.FirstNameB + " " + m.LastNameB
}

// Day parses the match date. The backend may send a bare date or a full
// RFC 3339 timestamp.
func (m Match) Day() (time.Time, error) {
	if t, err := time.Parse(DateLayout, m.Date); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, m.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("match %s: unparseable date %q", m.ID, m.Date)
	}
	return t, nil
}

// Score renders "A - B", or "" for a match that has not been played.
func (m Match) Score() string {
	if !m.Played || m.ScoreA == nil || m.ScoreB == nil {
		return ""
	}
	return fmt.Sprintf("%d - %d", *m.ScoreA, *m.ScoreB)
}

// Winner returns the winning player's name. Ties never happen on a played
// match; B is reported when the scores are missing or equal.
func (m Match) Winner() (string, bool) {
	if !m.Played {
		return "", false
	}
	if m.ScoreA != nil && m.ScoreB != nil && *m.ScoreA > *m.ScoreB {
		return m.PlayerA(), true
	}
	return m.PlayerB(), true
}

// Filter selects matches in the listing view.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterScheduled Filter = "scheduled"
)

// ParseFilter accepts the English names and the Italian ones of the
// original views.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "all", "tutti":
		return FilterAll, nil
	case "completed", "completati":
		return FilterCompleted, nil
	case "scheduled", "programmati":
		return FilterScheduled, nil
	}
	return "", fmt.Errorf("unknown filter %q: want all, completed or scheduled", s)
}

func (f Filter) Match(m Match) bool {
	switch f {
	case FilterCompleted:
		return m.Played
	case FilterScheduled:
		return !m.Played
	}
	return true
}

// FilterMatches keeps the matches selected by f, preserving order.
func FilterMatches(matches []Match, f Filter) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// CountPlayed returns how many matches are completed and how many are
// still scheduled.
func CountPlayed(matches []Match) (played, scheduled int) {
	for _, m := range matches {
		if m.Played {
			played++
		} else {
			scheduled++
		}
	}
	return played, scheduled
}
