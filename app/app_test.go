package app_test

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jrsteele09/torneo-pingpong/api"
	"github.com/jrsteele09/torneo-pingpong/app"
	"github.com/jrsteele09/torneo-pingpong/internal/apitest"
	"github.com/jrsteele09/torneo-pingpong/internal/config"
	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
	"github.com/jrsteele09/torneo-pingpong/internal/utils"
	"github.com/jrsteele09/torneo-pingpong/routes"
	filestore "github.com/jrsteele09/torneo-pingpong/tokenstore/file"
	memorystore "github.com/jrsteele09/torneo-pingpong/tokenstore/memory"
	redisstore "github.com/jrsteele09/torneo-pingpong/tokenstore/redis"
	"github.com/jrsteele09/torneo-pingpong/tournament"
	"github.com/jrsteele09/torneo-pingpong/users"
	"github.com/stretchr/testify/require"
)

const testPassword = "password123"

type testFixture struct {
	server *apitest.Server
	store  *memorystore.MemoryStore
	app    *app.App
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	server := apitest.New()
	t.Cleanup(server.Close)

	store := memorystore.New()
	cfg := config.New(config.WithValue(config.APIBaseURLVar, server.URL))
	a, err := app.New(cfg, app.WithStore(store))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, a.Close())
	})

	return &testFixture{server: server, store: store, app: a}
}

func (f *testFixture) login(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, f.app.Login(context.Background(), users.Credentials{Email: email, Password: testPassword}))
	f.app.Sessions.Wait()
}

func TestApp_New(t *testing.T) {
	t.Run("file store by default", func(t *testing.T) {
		t.Setenv(config.TokenStoreVar, "")
		dir := t.TempDir()
		a, err := app.New(config.New(config.WithValue(config.DataFolderVar, dir)))
		require.NoError(t, err)
		defer a.Close()

		store, ok := a.Store.(*filestore.FileStore)
		require.True(t, ok)
		require.Equal(t, filepath.Join(dir, "credentials.json"), store.Path())
	})

	t.Run("memory store", func(t *testing.T) {
		a, err := app.New(config.New(config.WithValue(config.TokenStoreVar, config.StoreMemory)))
		require.NoError(t, err)
		defer a.Close()

		_, ok := a.Store.(*memorystore.MemoryStore)
		require.True(t, ok)
	})

	t.Run("redis store", func(t *testing.T) {
		mr := miniredis.RunT(t)
		a, err := app.New(config.New(
			config.WithValue(config.TokenStoreVar, config.StoreRedis),
			config.WithValue(config.RedisAddrVar, mr.Addr()),
			config.WithValue(config.RedisPrefixVar, "test"),
		))
		require.NoError(t, err)

		store, ok := a.Store.(*redisstore.RedisStore)
		require.True(t, ok)
		require.Equal(t, "test:token", store.Key())

		store.Write("abc")
		stored, err := mr.Get("test:token")
		require.NoError(t, err)
		require.Equal(t, "abc", stored)
		require.NoError(t, a.Close())
	})

	t.Run("unknown store", func(t *testing.T) {
		_, err := app.New(config.New(config.WithValue(config.TokenStoreVar, "cookie")))
		require.ErrorIs(t, err, apperrors.ErrUnsupported)
	})
}

func TestApp_Session(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Seed("Mario", "Rossi", "mario@example.com", testPassword, false, false)

	t.Run("signed out views", func(t *testing.T) {
		route, err := f.app.Open(routes.PathStandings)
		require.NoError(t, err)
		require.Equal(t, routes.PathLogin, route.Path)

		_, err = f.app.Standings(context.Background())
		require.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
	})

	t.Run("login", func(t *testing.T) {
		f.login(t, "mario@example.com")

		s := f.app.Sessions.Snapshot()
		require.True(t, s.Authenticated())
		require.Equal(t, "Mario", s.Profile.FirstName)
		require.Equal(t, routes.PathDashboard, f.app.Router.Current())

		token, ok := f.store.Read()
		require.True(t, ok)
		require.Equal(t, s.Token, token)
	})

	t.Run("bad credentials leave the session alone", func(t *testing.T) {
		before := f.app.Sessions.Snapshot()
		err := f.app.Login(context.Background(), users.Credentials{Email: "mario@example.com", Password: "wrong"})
		require.True(t, api.IsUnauthorized(err))
		require.Equal(t, before, f.app.Sessions.Snapshot())

		err = f.app.Login(context.Background(), users.Credentials{Email: "mario"})
		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})

	t.Run("boot recovers the session", func(t *testing.T) {
		cfg := config.New(config.WithValue(config.APIBaseURLVar, f.server.URL))
		next, err := app.New(cfg, app.WithStore(f.store))
		require.NoError(t, err)
		defer next.Close()

		s := next.Boot(context.Background())
		require.True(t, s.Authenticated())
		require.NotNil(t, s.Profile)
		require.Equal(t, "mario@example.com", s.Profile.Email)
	})

	t.Run("boot discards a corrupted token", func(t *testing.T) {
		store := memorystore.NewWithToken("corrupted")
		cfg := config.New(config.WithValue(config.APIBaseURLVar, f.server.URL))
		next, err := app.New(cfg, app.WithStore(store))
		require.NoError(t, err)
		defer next.Close()

		s := next.Boot(context.Background())
		require.True(t, s.Empty())
		_, ok := store.Read()
		require.False(t, ok)
	})

	t.Run("logout", func(t *testing.T) {
		f.app.Logout()
		require.True(t, f.app.Sessions.Snapshot().Empty())
		require.Equal(t, routes.PathLogin, f.app.Router.Current())
		_, ok := f.store.Read()
		require.False(t, ok)
	})
}

func TestApp_Register(t *testing.T) {
	f := setupTestFixture(t)

	err := f.app.Register(context.Background(), users.Registration{FirstName: "Giulia", LastName: "Verdi", Email: "giulia@example.com", Password: testPassword})
	require.NoError(t, err)
	f.app.Sessions.Wait()

	s := f.app.Sessions.Snapshot()
	require.True(t, s.Authenticated())
	require.Equal(t, "Giulia Verdi", s.Profile.FullName())

	err = f.app.Register(context.Background(), users.Registration{FirstName: "Giulia"})
	require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}

func TestApp_Actions(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	rivalID := f.server.Seed("Luca", "Bianchi", "luca@example.com", testPassword, true, false)
	f.server.Seed("Mario", "Rossi", "mario@example.com", testPassword, false, false)
	f.login(t, "mario@example.com")

	t.Run("listing before enrolling is forbidden", func(t *testing.T) {
		_, err := f.app.Participants(ctx)
		require.True(t, api.IsForbidden(err))
		require.False(t, f.app.Sessions.Snapshot().Profile.Enrolled)
	})

	t.Run("enroll updates the profile locally", func(t *testing.T) {
		calls := f.server.ProfileCalls()
		require.NoError(t, f.app.Enroll(ctx))

		p := f.app.Sessions.Snapshot().Profile
		require.True(t, p.Enrolled)
		require.False(t, p.Organizer)
		require.Equal(t, calls, f.server.ProfileCalls())

		participants, err := f.app.Participants(ctx)
		require.NoError(t, err)
		require.Len(t, participants, 2)
	})

	t.Run("failed action keeps the session", func(t *testing.T) {
		before := f.app.Sessions.Snapshot()
		err := f.app.Enroll(ctx)
		require.Equal(t, 400, api.StatusCode(err))
		require.Equal(t, before, f.app.Sessions.Snapshot())
	})

	t.Run("manage view needs the organizer role", func(t *testing.T) {
		route, err := f.app.Open(routes.PathManage)
		require.NoError(t, err)
		require.Equal(t, routes.PathDashboard, route.Path)

		require.NoError(t, f.app.BecomeOrganizer(ctx))
		require.True(t, f.app.Sessions.Snapshot().Profile.Organizer)

		route, err = f.app.Open(routes.PathManage)
		require.NoError(t, err)
		require.Equal(t, routes.PathManage, route.Path)
	})

	t.Run("matches", func(t *testing.T) {
		me := f.app.Sessions.Snapshot().UserID()
		rival := users.ID(strconv.FormatInt(rivalID, 10))

		err := f.app.CreateMatch(ctx, tournament.MatchInput{PlayerA: me, PlayerB: me, Date: "2024-05-01"})
		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)

		require.NoError(t, f.app.CreateMatch(ctx, tournament.MatchInput{PlayerA: me, PlayerB: rival, Date: "2024-05-01"}))
		require.NoError(t, f.app.CreateMatch(ctx, tournament.MatchInput{PlayerA: rival, PlayerB: me, Date: "2024-05-02"}))

		upcoming, err := f.app.Matches(ctx, tournament.FilterScheduled)
		require.NoError(t, err)
		require.Len(t, upcoming, 2)

		in := tournament.InputFromMatch(upcoming[0])
		in.ScoreA, in.ScoreB = utils.Ptr(11), utils.Ptr(6)
		require.NoError(t, f.app.UpdateMatch(ctx, upcoming[0].ID, in))

		completed, err := f.app.Matches(ctx, tournament.FilterCompleted)
		require.NoError(t, err)
		require.Len(t, completed, 1)

		m, err := f.app.Match(ctx, upcoming[1].ID)
		require.NoError(t, err)
		require.False(t, m.Played)

		require.NoError(t, f.app.DeleteMatch(ctx, upcoming[1].ID))
		_, err = f.app.Match(ctx, upcoming[1].ID)
		require.ErrorIs(t, err, apperrors.ErrNotFound)

		rows, err := f.app.Standings(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, me, rows[0].ID)
	})

	t.Run("losing the organizer role leaves the manage view", func(t *testing.T) {
		_, err := f.app.Open(routes.PathManage)
		require.NoError(t, err)

		f.app.Sessions.UpdateProfile(users.ProfileUpdate{Organizer: utils.Ptr(false)})
		require.Equal(t, routes.PathDashboard, f.app.Router.Current())
	})
}
