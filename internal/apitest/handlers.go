package apitest

import (
	"encoding/json"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/jrsteele09/torneo-pingpong/tournament"
	"github.com/jrsteele09/torneo-pingpong/users"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func profileOf(u user) users.Profile {
	return users.Profile{
		ID:        users.ID(strconv.FormatInt(u.ID, 10)),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Enrolled:  u.Enrolled,
		Organizer: u.Organizer,
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reg users.Registration
		if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
			writeError(w, http.StatusBadRequest, "Richiesta non valida")
			return
		}
		if err := reg.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "Tutti i campi sono obbligatori")
			return
		}

		hash, err := hashPassword(reg.Password)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Errore del server")
			return
		}
		id, ok := s.data.addUser(user{
			FirstName:    strings.TrimSpace(reg.FirstName),
			LastName:     strings.TrimSpace(reg.LastName),
			Email:        reg.Email,
			PasswordHash: hash,
		})
		if !ok {
			writeError(w, http.StatusConflict, "Email già registrata")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds users.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			writeError(w, http.StatusBadRequest, "Richiesta non valida")
			return
		}

		u, ok := s.data.userByEmail(creds.Email)
		if !ok || !checkPasswordHash(creds.Password, u.PasswordHash) {
			writeError(w, http.StatusUnauthorized, "Credenziali non valide")
			return
		}

		token, err := s.tokens.create(u.ID, u.Email)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Errore del server")
			return
		}
		profile := profileOf(u)
		writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": profile})
	}
}

func (s *Server) UserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gate, fail := s.profileHooks()
		if gate != nil {
			select {
			case <-gate:
			case <-r.Context().Done():
				return
			}
		}
		if fail {
			writeError(w, http.StatusInternalServerError, "Errore del server")
			return
		}

		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "ID non valido")
			return
		}
		if id != callerID(r) {
			writeError(w, http.StatusForbidden, "Accesso negato")
			return
		}
		u, ok := s.data.user(id)
		if !ok {
			writeError(w, http.StatusNotFound, "Utente non trovato")
			return
		}
		writeJSON(w, http.StatusOK, profileOf(u))
	}
}

func (s *Server) EnrollHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := s.data.user(callerID(r))
		if u.Enrolled {
			writeError(w, http.StatusBadRequest, "Sei già iscritto al torneo")
			return
		}
		s.data.updateUser(u.ID, func(u *user) { u.Enrolled = true })
		writeJSON(w, http.StatusOK, map[string]string{"message": "Iscrizione completata"})
	}
}

func (s *Server) BecomeOrganizerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := s.data.user(callerID(r))
		if u.Organizer {
			writeError(w, http.StatusBadRequest, "Sei già un organizzatore")
			return
		}
		s.data.updateUser(u.ID, func(u *user) { u.Organizer = true })
		writeJSON(w, http.StatusOK, map[string]string{"message": "Ora sei un organizzatore"})
	}
}

func (s *Server) ParticipantsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enrolled := s.data.enrolled()
		out := make([]tournament.Participant, 0, len(enrolled))
		for _, u := range enrolled {
			out = append(out, tournament.Participant{
				ID:        users.ID(strconv.FormatInt(u.ID, 10)),
				FirstName: u.FirstName,
				LastName:  u.LastName,
				Email:     u.Email,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) matchView(m match) tournament.Match {
	a, _ := s.data.user(m.PlayerA)
	b, _ := s.data.user(m.PlayerB)
	return tournament.Match{
		ID:         users.ID(strconv.FormatInt(m.ID, 10)),
		PlayerAID:  users.ID(strconv.FormatInt(m.PlayerA, 10)),
		PlayerBID:  users.ID(strconv.FormatInt(m.PlayerB, 10)),
		FirstNameA: a.FirstName,
		LastNameA:  a.LastName,
		FirstNameB: b.FirstName,
		LastNameB:  b.LastName,
		Date:       m.Date,
		ScoreA:     m.ScoreA,
		ScoreB:     m.ScoreB,
		Played:     m.played(),
	}
}

func (s *Server) MatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := s.data.allMatches()
		out := make([]tournament.Match, 0, len(all))
		for _, m := range all {
			out = append(out, s.matchView(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// decodeMatch reads and checks a match body the way the backend would.
func (s *Server) decodeMatch(w http.ResponseWriter, r *http.Request) (match, bool) {
	var in tournament.MatchInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Richiesta non valida")
		return match{}, false
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return match{}, false
	}
	a, _ := in.PlayerA.Int()
	b, _ := in.PlayerB.Int()
	for _, id := range []int64{a, b} {
		if u, ok := s.data.user(id); !ok || !u.Enrolled {
			writeError(w, http.StatusBadRequest, "Partecipante non iscritto al torneo")
			return match{}, false
		}
	}
	in = in.Normalized()
	return match{PlayerA: a, PlayerB: b, Date: in.Date, ScoreA: in.ScoreA, ScoreB: in.ScoreB}, true
}

func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := s.decodeMatch(w, r)
		if !ok {
			return
		}
		m.ID = s.data.putMatch(m)
		writeJSON(w, http.StatusCreated, s.matchView(m))
	}
}

func (s *Server) UpdateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "ID non valido")
			return
		}
		if _, exists := s.data.match(id); !exists {
			writeError(w, http.StatusNotFound, "Incontro non trovato")
			return
		}
		m, ok := s.decodeMatch(w, r)
		if !ok {
			return
		}
		m.ID = id
		s.data.putMatch(m)
		writeJSON(w, http.StatusOK, s.matchView(m))
	}
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "ID non valido")
			return
		}
		if !s.data.deleteMatch(id) {
			writeError(w, http.StatusNotFound, "Incontro non trovato")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Incontro eliminato"})
	}
}

// StandingsHandler ranks qualified players first, then by win rate and
// wins. It is a stand-in for the real server's ranking.
func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		type tally struct{ played, wins int }
		tallies := map[int64]*tally{}
		for _, u := range s.data.enrolled() {
			tallies[u.ID] = &tally{}
		}
		for _, m := range s.data.allMatches() {
			if !m.played() {
				continue
			}
			winner := m.PlayerB
			if *m.ScoreA > *m.ScoreB {
				winner = m.PlayerA
			}
			for _, id := range []int64{m.PlayerA, m.PlayerB} {
				if t, ok := tallies[id]; ok {
					t.played++
					if id == winner {
						t.wins++
					}
				}
			}
		}

		out := make([]tournament.Standing, 0, len(tallies))
		for id, t := range tallies {
			u, _ := s.data.user(id)
			st := tournament.Standing{
				ID:        users.ID(strconv.FormatInt(id, 10)),
				FirstName: u.FirstName,
				LastName:  u.LastName,
				Played:    t.played,
				Wins:      t.wins,
				Qualified: t.played >= tournament.QualifyingGames,
			}
			if t.played > 0 {
				rate := math.Round(float64(t.wins)/float64(t.played)*10000) / 100
				st.WinRate = &rate
			}
			out = append(out, st)
		}
		sort.Slice(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if a.Qualified != b.Qualified {
				return a.Qualified
			}
			ra, rb := rateOf(a), rateOf(b)
			if ra != rb {
				return ra > rb
			}
			if a.Wins != b.Wins {
				return a.Wins > b.Wins
			}
			return a.ID < b.ID
		})
		for i := range out {
			out[i].Position = i + 1
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func rateOf(s tournament.Standing) float64 {
	if s.WinRate == nil {
		return -1
	}
	return *s.WinRate
}

// Seed registers a user directly and returns its id.
func (s *Server) Seed(firstName, lastName, email, password string, enrolled, organizer bool) int64 {
	hash, err := hashPassword(password)
	if err != nil {
		panic(err)
	}
	id, ok := s.data.addUser(user{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Enrolled:     enrolled,
		Organizer:    organizer,
	})
	if !ok {
		panic("apitest: duplicate email " + email)
	}
	return id
}

// SeedMatch stores a match directly and returns its id.
func (s *Server) SeedMatch(playerA, playerB int64, date string, scoreA, scoreB *int) int64 {
	return s.data.putMatch(match{PlayerA: playerA, PlayerB: playerB, Date: date, ScoreA: scoreA, ScoreB: scoreB})
}
