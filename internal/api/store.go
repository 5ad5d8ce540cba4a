package api

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileTokenStore keeps the bearer token in a file under the user config
// dir, the CLI's stand-in for the browser's localStorage.
type FileTokenStore struct {
	path string
	mu   sync.Mutex
}

func NewFileTokenStore() (*FileTokenStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	dir = filepath.Join(dir, "meet")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileTokenStore{path: filepath.Join(dir, "token")}, nil
}

func (s *FileTokenStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileTokenStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

// MemoryTokenStore holds the token in process memory only.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}
