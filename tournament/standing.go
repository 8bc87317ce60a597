package tournament

import (
	"fmt"

	"github.com/jrsteele09/torneo-pingpong/users"
)

// QualifyingGames is how many matches make a ranking position final.
const QualifyingGames = 5

// Standing is one row of GET /api/classifica. The ranking itself is
// computed server side.
type Standing struct {
	ID        users.ID `json:"id"`
	Position  int      `json:"posizione"`
	FirstName string   `json:"nome"`
	LastName  string   `json:"cognome"`
	Played    int      `json:"partite_giocate"`
	Wins      int      `json:"vittorie"`
	WinRate   *float64 `json:"percentuale_vittorie"`
	Qualified bool     `json:"posizione_valida"`
}

func (s Standing) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Progress is the number of games counted toward qualification, capped
// at QualifyingGames.
func (s Standing) Progress() int {
	if s.Played > QualifyingGames {
		return QualifyingGames
	}
	if s.Played < 0 {
		return 0
	}
	return s.Played
}

// WinRateLabel renders the win percentage, "N/A" before any game.
func (s Standing) WinRateLabel() string {
	if s.WinRate == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g%%", *s.WinRate)
}

// Medal is the podium marker for the first three positions.
func (s Standing) Medal() string {
	switch s.Position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return "🏓"
}

func (s Standing) Status() string {
	if s.Qualified {
		return "qualified"
	}
	return "pending"
}
