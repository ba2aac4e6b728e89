package store

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStorage persists the session token across restarts, the way a
// browser client keeps it in local storage.
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryTokenStorage keeps the token for the process lifetime only.
type MemoryTokenStorage struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStorage returns an empty in-memory token store.
func NewMemoryTokenStorage() *MemoryTokenStorage {
	return &MemoryTokenStorage{}
}

func (s *MemoryTokenStorage) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// FileTokenStorage persists the token to a file with user-only
// permissions.
type FileTokenStorage struct {
	path string
}

// NewFileTokenStorage returns a token store backed by the given path.
func NewFileTokenStorage(path string) *FileTokenStorage {
	return &FileTokenStorage{path: path}
}

func (s *FileTokenStorage) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStorage) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileTokenStorage) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
