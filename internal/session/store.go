// ABOUTME: Durable on-disk persistence for the storefront session
// ABOUTME: Stores the user profile and bearer token in the XDG config directory

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// File names for the two session keys.
const (
	userFile  = "userinfo.json"
	tokenFile = "token"
)

// User is the profile record returned by the backend at login or
// registration. It is stored verbatim; the store performs no validation
// beyond JSON round-tripping.
type User struct {
	ID              string `json:"_id,omitempty"`
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	IsAdmin         bool   `json:"isAdmin"`
	SoilType        string `json:"soilType,omitempty"`
	Climate         string `json:"climate,omitempty"`
	WaterConditions string `json:"waterConditions,omitempty"`
}

// Store persists the session under a config directory, one file per key.
type Store struct {
	configDir string
}

// NewStore creates a store rooted at the given config directory.
func NewStore(configDir string) *Store {
	return &Store{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "seed-store")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "seed-store")
}

func (s *Store) userPath() string {
	return filepath.Join(s.configDir, userFile)
}

func (s *Store) tokenPath() string {
	return filepath.Join(s.configDir, tokenFile)
}

// Save writes the user profile, and the token when one is present.
// Prior values are overwritten unconditionally.
func (s *Store) Save(user *User, token string) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.userPath(), data, 0600); err != nil {
		return err
	}

	if token != "" {
		if err := os.WriteFile(s.tokenPath(), []byte(token), 0600); err != nil {
			return err
		}
	}

	return nil
}

// Load reads the stored user profile. A missing file or one that fails to
// parse as JSON both mean "no session" and return nil without error.
func (s *Store) Load() (*User, error) {
	data, err := os.ReadFile(s.userPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		// Corrupted state is treated as absent, not an error
		return nil, nil
	}

	return &user, nil
}

// Token reads the stored bearer token, or "" when none is stored.
func (s *Store) Token() string {
	data, err := os.ReadFile(s.tokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Clear removes both session keys. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.userPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(s.tokenPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
