package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenStorage persists the one opaque auth token between runs. The file
// implementation is the production one; tests swap in a fake.
type TokenStorage interface {
	// Read returns the stored token, or "" when none is stored.
	Read() (string, error)
	// Write stores the token, replacing any previous one.
	Write(token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}

// FileTokenStorage keeps the token as a single line in a 0600 file.
type FileTokenStorage struct {
	Path string
}

func NewFileTokenStorage(path string) *FileTokenStorage {
	return &FileTokenStorage{Path: path}
}

func (s *FileTokenStorage) Read() (string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStorage) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func (s *FileTokenStorage) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
