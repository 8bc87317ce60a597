// Package apitest runs an in-process fake of the tournament backend for
// tests. It speaks the same paths, payloads and error bodies as the real
// API and signs real HS256 tokens.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/jrsteele09/torneo-pingpong/api"
)

// Server is a running fake backend. Use URL as the client base URL.
type Server struct {
	*httptest.Server

	mux    *http.ServeMux
	tokens *tokenCreator
	data   *store

	hookLock      sync.Mutex
	profileGate   chan struct{}
	profileFail   bool
	profileCalls  int
	profileCalled chan struct{}
}

// New starts a fake backend. Call Close when done.
func New() *Server {
	s := &Server{
		mux:           http.NewServeMux(),
		tokens:        newTokenCreator([]byte("apitest-secret"), time.Hour),
		data:          newStore(),
		profileCalled: make(chan struct{}, 64),
	}
	s.initRoutes()
	s.Server = httptest.NewServer(s.mux)
	return s
}

func (s *Server) initRoutes() {
	s.mux.HandleFunc("POST "+api.RouteRegister, s.RegisterHandler())
	s.mux.HandleFunc("POST "+api.RouteLogin, s.LoginHandler())
	s.mux.HandleFunc("GET "+api.RouteUsers+"/{id}", ChainMiddleware(s.UserHandler(), s.RequireAuth))

	s.mux.HandleFunc("POST "+api.RouteEnroll, ChainMiddleware(s.EnrollHandler(), s.RequireAuth))
	s.mux.HandleFunc("POST "+api.RouteBecomeOrganizer, ChainMiddleware(s.BecomeOrganizerHandler(), s.RequireAuth))

	s.mux.HandleFunc("GET "+api.RouteParticipants, ChainMiddleware(s.ParticipantsHandler(), s.RequireAuth, s.RequireEnrolled))
	s.mux.HandleFunc("GET "+api.RouteMatches, ChainMiddleware(s.MatchesHandler(), s.RequireAuth, s.RequireEnrolled))
	s.mux.HandleFunc("POST "+api.RouteMatches, ChainMiddleware(s.CreateMatchHandler(), s.RequireAuth, s.RequireOrganizer))
	s.mux.HandleFunc("PUT "+api.RouteMatches+"/{id}", ChainMiddleware(s.UpdateMatchHandler(), s.RequireAuth, s.RequireOrganizer))
	s.mux.HandleFunc("DELETE "+api.RouteMatches+"/{id}", ChainMiddleware(s.DeleteMatchHandler(), s.RequireAuth, s.RequireOrganizer))
	s.mux.HandleFunc("GET "+api.RouteStandings, ChainMiddleware(s.StandingsHandler(), s.RequireAuth))
}

// HoldProfiles makes profile lookups block until the returned release func
// is called.
func (s *Server) HoldProfiles() (release func()) {
	gate := make(chan struct{})
	s.hookLock.Lock()
	s.profileGate = gate
	s.hookLock.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.hookLock.Lock()
			s.profileGate = nil
			s.hookLock.Unlock()
			close(gate)
		})
	}
}

// FailProfiles makes profile lookups answer 500 while fail is true.
func (s *Server) FailProfiles(fail bool) {
	s.hookLock.Lock()
	defer s.hookLock.Unlock()
	s.profileFail = fail
}

// ProfileCalls counts GET /api/utenti/{id} requests received so far.
func (s *Server) ProfileCalls() int {
	s.hookLock.Lock()
	defer s.hookLock.Unlock()
	return s.profileCalls
}

// ProfileCalled receives one value per profile request as it arrives,
// before any hold is applied.
func (s *Server) ProfileCalled() <-chan struct{} {
	return s.profileCalled
}

func (s *Server) profileHooks() (gate chan struct{}, fail bool) {
	s.hookLock.Lock()
	s.profileCalls++
	gate, fail = s.profileGate, s.profileFail
	s.hookLock.Unlock()

	select {
	case s.profileCalled <- struct{}{}:
	default:
	}
	return gate, fail
}
