package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/jrsteele09/torneo-pingpong/api"
	"github.com/jrsteele09/torneo-pingpong/internal/apitest"
	"github.com/jrsteele09/torneo-pingpong/internal/utils"
	"github.com/jrsteele09/torneo-pingpong/token"
	"github.com/jrsteele09/torneo-pingpong/tournament"
	"github.com/jrsteele09/torneo-pingpong/users"
	"github.com/stretchr/testify/require"
)

const testPassword = "password123"

type testFixture struct {
	server *apitest.Server
	client *api.Client
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	server := apitest.New()
	t.Cleanup(server.Close)

	return &testFixture{
		server: server,
		client: api.NewClient(server.URL+"/", api.WithTimeout(5*time.Second)),
	}
}

func (f *testFixture) seed(t *testing.T, email string, enrolled, organizer bool) (users.ID, string) {
	t.Helper()
	id := f.server.Seed("Mario", "Rossi", email, testPassword, enrolled, organizer)
	return users.ID(strconv.FormatInt(id, 10)), f.server.TokenFor(id)
}

func TestClient_Accounts(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	require.Equal(t, f.server.URL, f.client.BaseURL())

	reg := users.Registration{FirstName: "Giulia", LastName: "Verdi", Email: "giulia@example.com", Password: testPassword}

	t.Run("register", func(t *testing.T) {
		require.NoError(t, f.client.Register(ctx, reg))
	})

	t.Run("register twice", func(t *testing.T) {
		err := f.client.Register(ctx, reg)
		require.Error(t, err)
		require.Equal(t, http.StatusConflict, api.StatusCode(err))
		require.Equal(t, "Email già registrata", err.Error())
	})

	t.Run("login", func(t *testing.T) {
		resp, err := f.client.Login(ctx, users.Credentials{Email: reg.Email, Password: testPassword})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.User)
		require.Equal(t, "Giulia", resp.User.FirstName)
		require.False(t, resp.User.Enrolled)

		claims, err := token.Decode(resp.Token)
		require.NoError(t, err)
		require.Equal(t, resp.User.ID.String(), claims.UserID)

		profile, err := f.client.GetUser(ctx, resp.Token, resp.User.ID)
		require.NoError(t, err)
		require.Equal(t, *resp.User, *profile)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.client.Login(ctx, users.Credentials{Email: reg.Email, Password: "nope"})
		require.True(t, api.IsUnauthorized(err))
		require.Equal(t, "Credenziali non valide", err.Error())
	})

	t.Run("profile without token", func(t *testing.T) {
		_, err := f.client.GetUser(ctx, "", "1")
		require.True(t, api.IsUnauthorized(err))
	})

	t.Run("profile with forged token", func(t *testing.T) {
		_, err := f.client.GetUser(ctx, "a.b.c", "1")
		require.True(t, api.IsUnauthorized(err))
	})
}

func TestClient_TournamentActions(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	id, bearer := f.seed(t, "mario@example.com", false, false)

	t.Run("listings need enrollment", func(t *testing.T) {
		_, err := f.client.Participants(ctx, bearer)
		require.True(t, api.IsForbidden(err))

		_, err = f.client.Matches(ctx, bearer)
		require.True(t, api.IsForbidden(err))
	})

	t.Run("enroll", func(t *testing.T) {
		require.NoError(t, f.client.Enroll(ctx, bearer))

		profile, err := f.client.GetUser(ctx, bearer, id)
		require.NoError(t, err)
		require.True(t, profile.Enrolled)

		participants, err := f.client.Participants(ctx, bearer)
		require.NoError(t, err)
		require.Len(t, participants, 1)
		require.Equal(t, id, participants[0].ID)
		require.Equal(t, "MR", participants[0].Initials())
	})

	t.Run("enroll twice", func(t *testing.T) {
		err := f.client.Enroll(ctx, bearer)
		require.Equal(t, http.StatusBadRequest, api.StatusCode(err))
	})

	t.Run("become organizer", func(t *testing.T) {
		require.NoError(t, f.client.BecomeOrganizer(ctx, bearer))

		profile, err := f.client.GetUser(ctx, bearer, id)
		require.NoError(t, err)
		require.True(t, profile.Organizer)
	})
}

func TestClient_Matches(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	organizerID, organizer := f.seed(t, "org@example.com", true, true)
	rivalID := users.ID(strconv.FormatInt(f.server.Seed("Luca", "Bianchi", "luca@example.com", testPassword, true, false), 10))
	_, player := f.seed(t, "player@example.com", true, false)

	in := tournament.MatchInput{PlayerA: organizerID, PlayerB: rivalID, Date: "2024-05-01"}

	t.Run("players cannot manage", func(t *testing.T) {
		err := f.client.CreateMatch(ctx, player, in)
		require.True(t, api.IsForbidden(err))
	})

	t.Run("create scheduled", func(t *testing.T) {
		require.NoError(t, f.client.CreateMatch(ctx, organizer, in))

		matches, err := f.client.Matches(ctx, player)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		require.False(t, matches[0].Played)
		require.Equal(t, "Luca Bianchi", matches[0].PlayerB())
	})

	t.Run("record result", func(t *testing.T) {
		matches, err := f.client.Matches(ctx, organizer)
		require.NoError(t, err)

		update := tournament.InputFromMatch(matches[0])
		update.ScoreA, update.ScoreB = utils.Ptr(11), utils.Ptr(8)
		require.NoError(t, f.client.UpdateMatch(ctx, organizer, matches[0].ID, update))

		matches, err = f.client.Matches(ctx, organizer)
		require.NoError(t, err)
		require.True(t, matches[0].Played)
		require.Equal(t, "11 - 8", matches[0].Score())
		winner, _ := matches[0].Winner()
		require.Equal(t, "Mario Rossi", winner)
	})

	t.Run("lone score is not sent", func(t *testing.T) {
		lone := in
		lone.Date = "2024-06-01"
		lone.ScoreA = utils.Ptr(11)
		require.NoError(t, f.client.CreateMatch(ctx, organizer, lone))

		matches, err := f.client.Matches(ctx, organizer)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		require.False(t, matches[1].Played)
		require.Nil(t, matches[1].ScoreA)
	})

	t.Run("server rejects a draw", func(t *testing.T) {
		draw := in
		draw.ScoreA, draw.ScoreB = utils.Ptr(5), utils.Ptr(5)
		err := f.client.CreateMatch(ctx, organizer, draw)
		require.Equal(t, http.StatusBadRequest, api.StatusCode(err))
	})

	t.Run("update missing match", func(t *testing.T) {
		err := f.client.UpdateMatch(ctx, organizer, "999", in)
		require.Equal(t, http.StatusNotFound, api.StatusCode(err))
	})

	t.Run("delete", func(t *testing.T) {
		matches, err := f.client.Matches(ctx, organizer)
		require.NoError(t, err)
		require.NoError(t, f.client.DeleteMatch(ctx, organizer, matches[1].ID))

		err = f.client.DeleteMatch(ctx, organizer, matches[1].ID)
		require.Equal(t, http.StatusNotFound, api.StatusCode(err))

		matches, err = f.client.Matches(ctx, organizer)
		require.NoError(t, err)
		require.Len(t, matches, 1)
	})

	t.Run("standings", func(t *testing.T) {
		rows, err := f.client.Standings(ctx, player)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		require.Equal(t, organizerID, rows[0].ID)
		require.Equal(t, 1, rows[0].Position)
		require.Equal(t, 1, rows[0].Wins)
		require.Equal(t, "100%", rows[0].WinRateLabel())
		require.False(t, rows[0].Qualified)

		require.Equal(t, "N/A", rows[2].WinRateLabel())
	})
}

func TestClient_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("network error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		err := api.NewClient(url).Register(ctx, users.Registration{})
		require.Error(t, err)
		require.True(t, api.IsNetworkError(err))
		require.Zero(t, api.StatusCode(err))
		require.Contains(t, err.Error(), "connection error")
	})

	t.Run("default message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		err := api.NewClient(server.URL).Enroll(ctx, "tok")
		require.Equal(t, http.StatusInternalServerError, api.StatusCode(err))
		require.Equal(t, "enrollment failed", err.Error())
		require.False(t, api.IsNetworkError(err))
	})

	t.Run("bearer header", func(t *testing.T) {
		var got string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		require.NoError(t, api.NewClient(server.URL).BecomeOrganizer(ctx, "tok-123"))
		require.Equal(t, "Bearer tok-123", got)
	})

	t.Run("undecodable body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}))
		defer server.Close()

		_, err := api.NewClient(server.URL).Standings(ctx, "tok")
		require.Error(t, err)
		require.Zero(t, api.StatusCode(err))
	})
}
