// ABOUTME: TicBuddy configuration from a JSON file plus environment overrides.
// ABOUTME: Proxy endpoint and bearer token are never hardcoded.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/harperreed/ticbuddy/internal/storage"
)

// Config stores TicBuddy settings. File values are overridden by
// environment variables.
type Config struct {
	// ProxyURL is the chat proxy endpoint, e.g.
	// https://example.up.railway.app/api/tictalk.
	ProxyURL string `json:"proxy_url,omitempty" env:"TICBUDDY_PROXY_URL"`

	// AuthToken is the shared bearer secret for the proxy.
	AuthToken string `json:"auth_token,omitempty" env:"TICBUDDY_AUTH_TOKEN"`

	// DataDir is the root directory for the badger store. Supports ~
	// expansion. Defaults to ~/.local/share/ticbuddy.
	DataDir string `json:"data_dir,omitempty" env:"TICBUDDY_DATA_DIR"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// OpenStorage opens the badger repository at the configured data
// directory.
func (c *Config) OpenStorage() (storage.Repository, error) {
	return storage.Open(c.GetDataDir())
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "ticbuddy", "config.json")
}

// Load reads config from disk, then applies environment overrides.
// A missing file yields the defaults.
func Load() (*Config, error) {
	var cfg Config

	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
