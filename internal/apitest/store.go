package apitest

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

type user struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Enrolled     bool
	Organizer    bool
}

type match struct {
	ID      int64
	PlayerA int64
	PlayerB int64
	Date    string
	ScoreA  *int
	ScoreB  *int
}

func (m match) played() bool {
	return m.ScoreA != nil && m.ScoreB != nil
}

// store is the backend's in-memory database.
type store struct {
	users     map[int64]*user
	emailIDs  map[string]int64 // email to user id
	matches   map[int64]*match
	nextUser  int64
	nextMatch int64
	lock      sync.RWMutex
}

func newStore() *store {
	return &store{
		users:    make(map[int64]*user),
		emailIDs: make(map[string]int64),
		matches:  make(map[int64]*match),
	}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *store) addUser(u user) (int64, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	email := strings.ToLower(u.Email)
	if _, exists := s.emailIDs[email]; exists {
		return 0, false
	}
	s.nextUser++
	u.ID = s.nextUser
	s.users[u.ID] = &u
	s.emailIDs[email] = u.ID
	return u.ID, true
}

func (s *store) user(id int64) (user, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user{}, false
	}
	return *u, true
}

func (s *store) userByEmail(email string) (user, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	id, ok := s.emailIDs[strings.ToLower(email)]
	if !ok {
		return user{}, false
	}
	return *s.users[id], true
}

func (s *store) updateUser(id int64, fn func(*user)) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	u, ok := s.users[id]
	if !ok {
		return false
	}
	fn(u)
	return true
}

func (s *store) enrolled() []user {
	s.lock.RLock()
	defer s.lock.RUnlock()

	out := make([]user, 0)
	for _, u := range s.users {
		if u.Enrolled {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *store) putMatch(m match) int64 {
	s.lock.Lock()
	defer s.lock.Unlock()

	if m.ID == 0 {
		s.nextMatch++
		m.ID = s.nextMatch
	}
	s.matches[m.ID] = &m
	return m.ID
}

func (s *store) match(id int64) (match, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	m, ok := s.matches[id]
	if !ok {
		return match{}, false
	}
	return *m, true
}

func (s *store) deleteMatch(id int64) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.matches[id]; !ok {
		return false
	}
	delete(s.matches, id)
	return true
}

func (s *store) allMatches() []match {
	s.lock.RLock()
	defer s.lock.RUnlock()

	out := make([]match, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}
