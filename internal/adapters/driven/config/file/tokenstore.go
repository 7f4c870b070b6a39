package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/oauth2"
)

// TokenStore persists an OAuth token as JSON in the pagecal config
// directory. The file carries the refresh token, so it is written with
// owner-only permissions.
type TokenStore struct {
	mu       sync.Mutex
	filePath string
}

// NewTokenStore creates a token store rooted at configDir.
// If configDir is empty, defaults to ~/.pagecal/token.json.
func NewTokenStore(configDir string) (*TokenStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".pagecal")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &TokenStore{
		filePath: filepath.Join(configDir, "token.json"),
	}, nil
}

// Load reads the stored token. Returns (nil, nil) when no token exists.
func (s *TokenStore) Load() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Save writes the token to disk with restricted permissions.
func (s *TokenStore) Save(token *oauth2.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Clear removes the stored token. Missing file is not an error.
func (s *TokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the token file path.
func (s *TokenStore) Path() string {
	return s.filePath
}
