package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jrsteele09/torneo-pingpong/api"
	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
	"github.com/jrsteele09/torneo-pingpong/routes"
	"github.com/jrsteele09/torneo-pingpong/sessions"
	"github.com/jrsteele09/torneo-pingpong/tournament"
	"github.com/pterm/pterm"
)

// Explain adds a hint to errors the user can act on.
func Explain(err error) {
	switch {
	case api.IsNetworkError(err):
		pterm.Error.Println("Cannot reach the tournament server, try again in a moment")
	case api.IsUnauthorized(err):
		pterm.Error.Println("The server rejected your session, sign in again: torneo auth login")
	case apperrors.Is(err, apperrors.ErrNotAuthenticated), apperrors.Is(err, apperrors.ErrForbidden):
		// Open already printed a hint.
		pterm.Error.Println(err.Error())
	case api.IsForbidden(err):
		pterm.Error.Println(err.Error())
		pterm.Info.Println("Enroll first to see the tournament: torneo enroll")
	default:
		pterm.Error.Println(err.Error())
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// PrintDashboard shows the signed-in player and the menu.
func PrintDashboard(s sessions.Session, links []routes.Link) {
	pterm.DefaultSection.Println("Dashboard")
	if s.Profile == nil {
		pterm.Warning.Printf("Profile of user %s not loaded yet\n", s.UserID())
	} else {
		pterm.Info.Printf("Welcome, %s (%s)\n", s.Profile.FullName(), s.Profile.Email)
		table := pterm.TableData{
			{"ENROLLED", "ORGANIZER"},
			{yesNo(s.Profile.Enrolled), yesNo(s.Profile.Organizer)},
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(table).Render()
		if !s.Profile.Enrolled {
			pterm.Info.Println("Join the tournament with: torneo enroll")
		}
	}

	items := make([]pterm.BulletListItem, 0, len(links))
	for _, l := range links {
		text := fmt.Sprintf("%s (%s)", l.Title, l.Path)
		if l.Active {
			text += " *"
		}
		items = append(items, pterm.BulletListItem{Level: 0, Text: text})
	}
	_ = pterm.DefaultBulletList.WithItems(items).Render()
}

func PrintParticipants(participants []tournament.Participant) {
	pterm.DefaultSection.Printf("Participants (%d)\n", len(participants))
	if len(participants) == 0 {
		pterm.Info.Println("Nobody has enrolled yet")
		return
	}
	table := pterm.TableData{{"ID", "", "NAME", "EMAIL"}}
	for _, p := range participants {
		table = append(table, []string{p.ID.String(), p.Initials(), p.FullName(), p.Email})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(table).Render()
}

func PrintMatches(matches []tournament.Match, filter tournament.Filter) {
	played, scheduled := tournament.CountPlayed(matches)
	pterm.DefaultSection.Printf("Matches: %s (%d played, %d scheduled)\n", filter, played, scheduled)
	if len(matches) == 0 {
		pterm.Info.Println("No matches")
		return
	}
	table := pterm.TableData{{"ID", "DATE", "PLAYER A", "PLAYER B", "SCORE", "WINNER"}}
	for _, m := range matches {
		date := m.Date
		if day, err := m.Day(); err == nil {
			date = day.Format(tournament.DateLayout)
		}
		score, winner := "-", "scheduled"
		if m.Played {
			score = m.Score()
			winner, _ = m.Winner()
		}
		table = append(table, []string{m.ID.String(), date, m.PlayerA(), m.PlayerB(), score, winner})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(table).Render()
}

func PrintStandings(rows []tournament.Standing) {
	pterm.DefaultSection.Println("Standings")
	if len(rows) == 0 {
		pterm.Info.Println("No standings yet")
		return
	}
	table := pterm.TableData{{"POS", "PLAYER", "PLAYED", "WINS", "WIN RATE", "PROGRESS", "STATUS"}}
	for _, r := range rows {
		progress := strings.Repeat("●", r.Progress()) + strings.Repeat("○", tournament.QualifyingGames-r.Progress())
		table = append(table, []string{
			r.Medal() + " " + strconv.Itoa(r.Position),
			r.FullName(),
			strconv.Itoa(r.Played),
			strconv.Itoa(r.Wins),
			r.WinRateLabel(),
			progress,
			r.Status(),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(table).Render()
	pterm.Info.Printf("A position is final after %d games\n", tournament.QualifyingGames)
}
