package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SessionStore keeps the bearer token between client invocations. It is
// advisory only: a stored token proves nothing, the server verifies every
// request. Filesystem failures degrade it to an in-memory store rather
// than erroring, so it stays usable in environments without a home
// directory.
type SessionStore struct {
	mu    sync.RWMutex
	path  string
	token string
}

// NewSessionStore persists under $HOME/.careernet/token. If the home
// directory cannot be resolved the store is memory-only.
func NewSessionStore() *SessionStore {
	home, err := os.UserHomeDir()
	if err != nil {
		return &SessionStore{}
	}
	return NewSessionStoreAt(filepath.Join(home, ".careernet", "token"))
}

func NewSessionStoreAt(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (s *SessionStore) Store(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if s.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if s.path != "" {
		_ = os.Remove(s.path)
	}
}

// Read returns the cached token, falling back to disk, or "" when no
// session is stored.
func (s *SessionStore) Read() string {
	s.mu.RLock()
	if s.token != "" {
		token := s.token
		s.mu.RUnlock()
		return token
	}
	s.mu.RUnlock()

	if s.path == "" {
		return ""
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	token := strings.TrimSpace(string(data))

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return token
}

func (s *SessionStore) IsAuthenticated() bool {
	return s.Read() != ""
}
