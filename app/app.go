// Package app wires the tournament client together: configuration, token
// store, REST client, router and session manager.
package app

import (
	"context"
	"io"
	"net/http"

	"github.com/jrsteele09/torneo-pingpong/api"
	"github.com/jrsteele09/torneo-pingpong/internal/config"
	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
	"github.com/jrsteele09/torneo-pingpong/routes"
	"github.com/jrsteele09/torneo-pingpong/sessions"
	"github.com/jrsteele09/torneo-pingpong/tokenstore"
	filestore "github.com/jrsteele09/torneo-pingpong/tokenstore/file"
	memorystore "github.com/jrsteele09/torneo-pingpong/tokenstore/memory"
	redisstore "github.com/jrsteele09/torneo-pingpong/tokenstore/redis"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// App is one running client instance. It owns exactly one session.
type App struct {
	Config   config.Config
	Store    tokenstore.Store
	API      *api.Client
	Router   *routes.Router
	Sessions *sessions.Manager

	closers     []io.Closer
	unsubscribe func()
}

type options struct {
	store      tokenstore.Store
	httpClient *http.Client
}

type Option func(*options)

// WithStore replaces the configured token store backend.
func WithStore(store tokenstore.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithHTTPClient sets the client used for every API call.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// New builds the client from cfg. Nothing touches the network or the token
// store until Boot.
func New(cfg config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg}

	if o.store != nil {
		a.Store = o.store
	} else {
		store, closer, err := newTokenStore(cfg)
		if err != nil {
			return nil, err
		}
		a.Store = store
		if closer != nil {
			a.closers = append(a.closers, closer)
		}
	}

	clientOpts := []api.ClientOption{api.WithTimeout(cfg.GetRequestTimeout())}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(o.httpClient))
	}
	a.API = api.NewClient(cfg.GetAPIBaseURL(), clientOpts...)

	a.Router = routes.NewRouter(routes.DefaultTable())
	a.Sessions = sessions.NewManager(a.Store, a.API,
		sessions.WithNavigator(a.Router),
		sessions.WithFetchTimeout(cfg.GetProfileFetchTimeout()),
		sessions.WithLandingPaths(routes.PathDashboard, routes.PathLogin),
	)
	a.unsubscribe = a.Sessions.Subscribe(a.recheckView)

	log.Debug().Str("api", a.API.BaseURL()).Str("store", cfg.GetTokenStore()).Msg("Client configured")
	return a, nil
}

func newTokenStore(cfg config.Config) (tokenstore.Store, io.Closer, error) {
	switch cfg.GetTokenStore() {
	case config.StoreFile:
		return filestore.New(cfg.GetDataFolder(), cfg.GetTokenKey()), nil, nil
	case config.StoreMemory:
		return memorystore.New(), nil, nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.GetRedisAddr()})
		return redisstore.New(client, cfg.GetRedisPrefix(), cfg.GetTokenKey()), client, nil
	}
	return nil, nil, apperrors.Wrapf(apperrors.ErrUnsupported, "token store %q", cfg.GetTokenStore())
}

// Boot recovers a persisted session and waits for its profile.
func (a *App) Boot(ctx context.Context) sessions.Session {
	a.Sessions.Start(ctx)
	a.Sessions.Wait()
	return a.Sessions.Snapshot()
}

// Close releases the token store connection, if any.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.Sessions.Wait()

	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Open navigates to path through the route guard and returns the view that
// is actually shown.
func (a *App) Open(path string) (routes.Route, error) {
	return a.Router.Navigate(path, a.Sessions.Snapshot())
}

// recheckView moves the client off an organizer view once the profile shows
// the user is not allowed there.
func (a *App) recheckView(s sessions.Session) {
	current, err := a.Router.CurrentRoute()
	if err != nil || current.Requirement != routes.Organizer {
		return
	}
	route, moved, err := a.Router.Recheck(s)
	if err != nil {
		log.Err(err).Str("path", current.Path).Msg("Failed to re-check view")
		return
	}
	if moved {
		log.Info().Str("from", current.Path).Str("to", route.Path).Msg("Left view after profile update")
	}
}
