package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/jrsteele09/torneo-pingpong/token"
	"github.com/jrsteele09/torneo-pingpong/tokenstore"
	"github.com/jrsteele09/torneo-pingpong/users"
	"github.com/rs/zerolog/log"
)

// Landing paths used after login and logout.
const (
	DefaultAuthenticatedLanding = "/dashboard"
	DefaultPublicLanding        = "/login"
)

const defaultFetchTimeout = 10 * time.Second

// ProfileFetcher looks up a user's profile with a bearer token.
type ProfileFetcher interface {
	GetUser(ctx context.Context, bearer string, userID users.ID) (*users.Profile, error)
}

// Navigator moves the client to another view.
type Navigator interface {
	GoTo(path string)
}

// Manager owns the one Session of a running client. All mutations go
// through it; observers learn about them through Subscribe.
//
// Every identity change bumps a generation counter and schedules exactly
// one background profile fetch. A fetch only commits its result when the
// generation and subject it started with are still current.
//
// Snapshots are queued in commit order under the state lock and handed to
// subscribers by one goroutine at a time, so the last snapshot a subscriber
// receives is always the current session.
type Manager struct {
	store         tokenstore.Store
	profiles      ProfileFetcher
	nav           Navigator
	decode        func(string) (*token.Claims, error)
	fetchTimeout  time.Duration
	authLanding   string
	publicLanding string

	// persist serializes store I/O with the state swap that follows it,
	// keeping the store and the session in step without holding lock
	// across a backend round trip.
	persist sync.Mutex

	lock        sync.Mutex
	session     Session
	generation  uint64
	subscribers map[int]func(Session)
	nextSubID   int
	outbox      []Session
	delivering  bool

	pending sync.WaitGroup
}

type ManagerOption func(*Manager)

// WithNavigator sets where login and logout send the client.
func WithNavigator(nav Navigator) ManagerOption {
	return func(m *Manager) {
		m.nav = nav
	}
}

// WithFetchTimeout bounds each background profile fetch.
func WithFetchTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.fetchTimeout = d
		}
	}
}

// WithLandingPaths overrides the views reached after login and logout.
func WithLandingPaths(authenticated, public string) ManagerOption {
	return func(m *Manager) {
		m.authLanding = authenticated
		m.publicLanding = public
	}
}

func NewManager(store tokenstore.Store, profiles ProfileFetcher, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:         store,
		profiles:      profiles,
		decode:        token.Decode,
		fetchTimeout:  defaultFetchTimeout,
		authLanding:   DefaultAuthenticatedLanding,
		publicLanding: DefaultPublicLanding,
		subscribers:   make(map[int]func(Session)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start recovers a session from the token store. A token that does not
// decode is cleared and the client carries on signed out.
func (m *Manager) Start(ctx context.Context) {
	rawToken, ok := m.store.Read()
	if !ok {
		return
	}

	claims, err := m.decode(rawToken)
	if err != nil {
		log.Warn().Err(err).Msg("Discarding persisted token")
		m.persist.Lock()
		m.store.Clear()
		m.lock.Lock()
		if !m.session.Empty() {
			m.generation++
			m.session = Session{}
			m.publishLocked()
		}
		m.lock.Unlock()
		m.persist.Unlock()
		m.deliver()
		return
	}

	m.lock.Lock()
	m.generation++
	gen := m.generation
	m.session = Session{Claims: claims, Token: rawToken}
	m.publishLocked()
	m.lock.Unlock()

	log.Debug().Str("user_id", claims.UserID).Msg("Session recovered from token store")
	m.deliver()
	m.scheduleFetch(ctx, gen, users.ID(claims.UserID), rawToken)
}

// Login installs a new identity. The token is decoded before anything is
// touched, so a bad token leaves both the session and the store as they
// were and the decode error is returned. When profile is nil it arrives
// later from the background fetch.
func (m *Manager) Login(ctx context.Context, rawToken string, profile *users.Profile) error {
	claims, err := m.decode(rawToken)
	if err != nil {
		return err
	}

	next := Session{Claims: claims, Token: rawToken}
	if profile != nil {
		p := *profile
		next.Profile = &p
	}

	m.persist.Lock()
	m.store.Write(rawToken)
	m.lock.Lock()
	m.generation++
	gen := m.generation
	m.session = next
	m.publishLocked()
	m.lock.Unlock()
	m.persist.Unlock()

	log.Info().Str("user_id", claims.UserID).Msg("Logged in")
	m.deliver()
	m.navigate(m.authLanding)
	m.scheduleFetch(ctx, gen, users.ID(claims.UserID), rawToken)
	return nil
}

// Logout clears the store and the session. Logging out while signed out
// changes nothing and does not navigate.
func (m *Manager) Logout() {
	m.persist.Lock()
	m.store.Clear()
	m.lock.Lock()
	if m.session.Empty() {
		m.lock.Unlock()
		m.persist.Unlock()
		return
	}
	m.generation++
	m.session = Session{}
	m.publishLocked()
	m.lock.Unlock()
	m.persist.Unlock()

	log.Info().Msg("Logged out")
	m.deliver()
	m.navigate(m.publicLanding)
}

// FetchProfile loads the profile of userID with the current token and
// stores it. Failures are logged and leave the session untouched. The
// returned profile is nil unless it was committed.
func (m *Manager) FetchProfile(ctx context.Context, userID users.ID) *users.Profile {
	m.lock.Lock()
	gen := m.generation
	bearer := m.session.Token
	authenticated := m.session.Authenticated()
	m.lock.Unlock()

	if !authenticated {
		log.Debug().Str("user_id", userID.String()).Msg("Skipping profile fetch while logged out")
		return nil
	}
	return m.fetch(ctx, gen, userID, bearer)
}

// Refresh re-fetches the profile of the signed-in user.
func (m *Manager) Refresh(ctx context.Context) *users.Profile {
	return m.FetchProfile(ctx, m.Snapshot().UserID())
}

// UpdateProfile merges a partial change into the loaded profile without a
// round trip. It does nothing when no profile is loaded.
func (m *Manager) UpdateProfile(update users.ProfileUpdate) {
	m.lock.Lock()
	if m.session.Profile == nil || update.Empty() {
		m.lock.Unlock()
		return
	}
	p := m.session.Profile.Apply(update)
	m.session.Profile = &p
	m.publishLocked()
	m.lock.Unlock()

	m.deliver()
}

// Snapshot returns a copy of the current session.
func (m *Manager) Snapshot() Session {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.session.clone()
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned func removes the subscription.
func (m *Manager) Subscribe(fn func(Session)) (unsubscribe func()) {
	m.lock.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	m.lock.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.lock.Lock()
			delete(m.subscribers, id)
			m.lock.Unlock()
		})
	}
}

// Wait blocks until every scheduled profile fetch has finished.
func (m *Manager) Wait() {
	m.pending.Wait()
}

func (m *Manager) scheduleFetch(ctx context.Context, gen uint64, userID users.ID, bearer string) {
	m.pending.Add(1)
	go func() {
		defer m.pending.Done()
		m.fetch(context.WithoutCancel(ctx), gen, userID, bearer)
	}()
}

func (m *Manager) fetch(ctx context.Context, gen uint64, userID users.ID, bearer string) *users.Profile {
	if m.profiles == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, m.fetchTimeout)
	defer cancel()

	profile, err := m.profiles.GetUser(ctx, bearer, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("Failed to fetch user profile")
		return nil
	}
	if profile == nil {
		return nil
	}

	m.lock.Lock()
	if m.generation != gen || m.session.Claims.Subject() != userID.String() {
		m.lock.Unlock()
		log.Debug().Str("user_id", userID.String()).Msg("Discarding stale profile")
		return nil
	}
	p := *profile
	m.session.Profile = &p
	committed := p
	m.publishLocked()
	m.lock.Unlock()

	m.deliver()
	return &committed
}

// publishLocked queues the current session for subscribers. Callers hold
// lock, so the queue follows commit order.
func (m *Manager) publishLocked() {
	m.outbox = append(m.outbox, m.session.clone())
}

// deliver drains the queue outside lock. Only one goroutine drains at a
// time; a change committed meanwhile, including one made by a subscriber,
// is picked up by the active drainer before it returns.
func (m *Manager) deliver() {
	m.lock.Lock()
	if m.delivering {
		m.lock.Unlock()
		return
	}
	m.delivering = true

	for len(m.outbox) > 0 {
		next := m.outbox[0]
		m.outbox = m.outbox[1:]
		subs := make([]func(Session), 0, len(m.subscribers))
		for _, fn := range m.subscribers {
			subs = append(subs, fn)
		}
		m.lock.Unlock()

		for _, fn := range subs {
			fn(next.clone())
		}
		m.lock.Lock()
	}
	m.delivering = false
	m.lock.Unlock()
}

func (m *Manager) navigate(path string) {
	if m.nav != nil && path != "" {
		m.nav.GoTo(path)
	}
}
