package memorystore

import (
	"sync"

	"github.com/jrsteele09/torneo-pingpong/tokenstore"
)

var _ tokenstore.Store = (*MemoryStore)(nil)

// MemoryStore keeps the token for the lifetime of the process only.
type MemoryStore struct {
	token string
	set   bool
	lock  sync.RWMutex
}

func New() *MemoryStore {
	return &MemoryStore{}
}

// NewWithToken returns a store that already holds token, as if it had been
// written by a previous run.
func NewWithToken(token string) *MemoryStore {
	return &MemoryStore{token: token, set: true}
}

func (s *MemoryStore) Read() (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.token, s.set
}

func (s *MemoryStore) Write(token string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.token = token
	s.set = true
}

func (s *MemoryStore) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.token = ""
	s.set = false
}
