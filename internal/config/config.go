// Package config stores Spotify API credentials in a YAML file under the
// user config directory, with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appDirName = "mufetch"
	fileName   = "config.yaml"

	envClientID     = "MUFETCH_SPOTIFY_CLIENT_ID"
	envClientSecret = "MUFETCH_SPOTIFY_CLIENT_SECRET"
)

// Config holds the persisted application settings.
type Config struct {
	SpotifyClientID     string `yaml:"spotify_client_id"`
	SpotifyClientSecret string `yaml:"spotify_client_secret"`
}

// HasCredentials reports whether both Spotify credentials are set.
func (c *Config) HasCredentials() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}

// Store reads and writes a config file in a fixed directory.
type Store struct {
	dir string
}

// DefaultStore locates the store under the user config directory
// (~/.config/mufetch on Linux).
func DefaultStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("config: locate config dir: %w", err)
	}
	return NewStore(filepath.Join(base, appDirName)), nil
}

// NewStore uses an explicit directory, mainly for tests.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the config file location.
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Init creates the config directory and an empty skeleton file if none
// exists yet.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	if _, err := os.Stat(s.Path()); err == nil {
		return nil
	}
	return s.Save(&Config{})
}

// Load reads the config file and applies environment overrides. A missing
// file is not an error; the zero config is returned.
func (s *Store) Load() (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(s.Path())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", s.Path(), err)
		}
	case os.IsNotExist(err):
		// fall through to env vars
	default:
		return nil, fmt.Errorf("config: read %s: %w", s.Path(), err)
	}

	cfg.SpotifyClientID = strings.TrimSpace(cfg.SpotifyClientID)
	cfg.SpotifyClientSecret = strings.TrimSpace(cfg.SpotifyClientSecret)

	if cfg.SpotifyClientID == "" {
		cfg.SpotifyClientID = strings.TrimSpace(os.Getenv(envClientID))
	}
	if cfg.SpotifyClientSecret == "" {
		cfg.SpotifyClientSecret = strings.TrimSpace(os.Getenv(envClientSecret))
	}
	return cfg, nil
}

// Save writes the config file with owner-only permissions, since it holds
// API secrets.
func (s *Store) Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	if err := os.WriteFile(s.Path(), data, 0o600); err != nil {
		return fmt.Errorf("config: write %s: %w", s.Path(), err)
	}
	return nil
}

// SaveCredentials trims and persists a credential pair.
func (s *Store) SaveCredentials(clientID, clientSecret string) error {
	return s.Save(&Config{
		SpotifyClientID:     strings.TrimSpace(clientID),
		SpotifyClientSecret: strings.TrimSpace(clientSecret),
	})
}
