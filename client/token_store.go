package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"threadline-be/internal/user"
)

// TokenStore persists the session credentials to a JSON file so a returning
// process picks up where the last one left off. Expiry is never checked
// locally; a stale token simply earns a 401 from the server.
type TokenStore struct {
	mu   sync.Mutex
	path string
}

type storedAuth struct {
	Token string     `json:"token"`
	Role  string     `json:"role"`
	User  *user.User `json:"user,omitempty"`
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// SetAuth replaces the stored credentials in one atomic write.
func (s *TokenStore) SetAuth(token, role string, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(storedAuth{Token: token, Role: role, User: u})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".auth-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *TokenStore) load() storedAuth {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return storedAuth{}
	}
	var auth storedAuth
	if err := json.Unmarshal(data, &auth); err != nil {
		return storedAuth{}
	}
	return auth
}

// Token returns the stored bearer token, or "" when logged out.
func (s *TokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Token
}

// Role returns the stored role, or "" when logged out.
func (s *TokenStore) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Role
}

// User returns the cached profile from the last successful login, if any.
func (s *TokenStore) User() *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().User
}

// Logout removes the credential file. Removing an absent file is not an
// error; logout is idempotent.
func (s *TokenStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
