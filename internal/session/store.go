// Package session owns the client-side session: the persisted bearer token,
// the cached user profile, and the expiry guard that force-ends the session
// when the token dies.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/jobdesk/internal/types"
)

const (
	tokenFile      = "token"
	userFile       = "me.json"
	returnPathFile = "return_path"
)

// Store persists session state under a directory. The token and the cached
// user blob live and die together: Clear removes both.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("session store directory is empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Token returns the persisted bearer token, or "" when anonymous.
func (s *Store) Token() string {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetToken persists the bearer token. An empty token removes it.
func (s *Store) SetToken(token string) error {
	path := filepath.Join(s.dir, tokenFile)
	if token == "" {
		return removeIfExists(path)
	}
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// User returns the cached current-user profile, if one is stored.
func (s *Store) User() (*types.User, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return nil, false
	}
	var u types.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, false
	}
	return &u, true
}

// SetUser caches the current-user profile so identity can be rendered
// without a round trip.
func (s *Store) SetUser(u *types.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), data, 0o600); err != nil {
		return fmt.Errorf("failed to cache user: %w", err)
	}
	return nil
}

// ReturnPath returns the location recorded before a forced logout, and
// removes the record.
func (s *Store) ReturnPath() string {
	path := filepath.Join(s.dir, returnPathFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	_ = os.Remove(path)
	return strings.TrimSpace(string(data))
}

// SetReturnPath records where to come back to after the next login.
func (s *Store) SetReturnPath(p string) error {
	path := filepath.Join(s.dir, returnPathFile)
	if p == "" {
		return removeIfExists(path)
	}
	if err := os.WriteFile(path, []byte(p), 0o600); err != nil {
		return fmt.Errorf("failed to record return path: %w", err)
	}
	return nil
}

// Clear removes the token and the cached user together.
func (s *Store) Clear() error {
	var errs []error
	if err := removeIfExists(filepath.Join(s.dir, tokenFile)); err != nil {
		errs = append(errs, err)
	}
	if err := removeIfExists(filepath.Join(s.dir, userFile)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
