package tournament_test

import (
	"encoding/json"
	"testing"

	"github.com/jrsteele09/torneo-pingpong/tournament"
	"github.com/stretchr/testify/require"
)

func TestStanding(t *testing.T) {
	body := `[
		{"id":1,"posizione":1,"nome":"Mario","cognome":"Rossi","partite_giocate":7,"vittorie":6,"percentuale_vittorie":85.71,"posizione_valida":true},
		{"id":2,"posizione":4,"nome":"Luca","cognome":"Bianchi","partite_giocate":0,"vittorie":0,"percentuale_vittorie":null,"posizione_valida":false}
	]`
	var rows []tournament.Standing
	require.NoError(t, json.Unmarshal([]byte(body), &rows))
	require.Len(t, rows, 2)

	leader, newcomer := rows[0], rows[1]

	require.Equal(t, "Mario Rossi", leader.FullName())
	require.Equal(t, tournament.QualifyingGames, leader.Progress())
	require.Equal(t, "85.71%", leader.WinRateLabel())
	require.Equal(t, "🥇", leader.Medal())
	require.Equal(t, "qualified", leader.Status())

	require.Nil(t, newcomer.WinRate)
	require.Equal(t, 0, newcomer.Progress())
	require.Equal(t, "N/A", newcomer.WinRateLabel())
	require.Equal(t, "🏓", newcomer.Medal())
	require.Equal(t, "pending", newcomer.Status())

	require.Equal(t, "🥈", tournament.Standing{Position: 2}.Medal())
	require.Equal(t, "🥉", tournament.Standing{Position: 3}.Medal())
	require.Equal(t, 3, tournament.Standing{Played: 3}.Progress())
}

func TestParticipant(t *testing.T) {
	p := tournament.Participant{FirstName: "élena", LastName: "rossi"}
	require.Equal(t, "ÉR", p.Initials())
	require.Equal(t, "élena rossi", p.FullName())
	require.Empty(t, tournament.Participant{}.Initials())
}
