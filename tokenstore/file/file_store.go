package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jrsteele09/torneo-pingpong/tokenstore"
	"github.com/rs/zerolog/log"
)

const credentialsFile = "credentials.json"

var _ tokenstore.Store = (*FileStore)(nil)

// FileStore keeps the token in a small JSON document, one key per slot.
type FileStore struct {
	path string
	key  string
}

// New returns a store writing to <dir>/credentials.json under key. The
// directory is created lazily on the first write.
func New(dir, key string) *FileStore {
	return &FileStore{
		path: filepath.Join(dir, credentialsFile),
		key:  key,
	}
}

// Path is the location of the credentials document.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Read() (string, bool) {
	slots, err := s.load()
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Token store unreadable, treating as empty")
		return "", false
	}
	token, ok := slots[s.key]
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func (s *FileStore) Write(token string) {
	slots, err := s.load()
	if err != nil {
		slots = map[string]string{}
	}
	slots[s.key] = token
	if err := s.save(slots); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Failed to persist token")
	}
}

func (s *FileStore) Clear() {
	slots, err := s.load()
	if err != nil || len(slots) == 0 {
		s.remove()
		return
	}
	if _, ok := slots[s.key]; !ok {
		return
	}
	delete(slots, s.key)
	if len(slots) == 0 {
		s.remove()
		return
	}
	if err := s.save(slots); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Failed to clear token")
	}
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	slots := map[string]string{}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}
	return slots, nil
}

// save writes through a temp file so a crash never leaves half a document.
func (s *FileStore) save(slots map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}
	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace credentials: %w", err)
	}
	return nil
}

func (s *FileStore) remove() {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", s.path).Msg("Failed to remove credentials file")
	}
}
