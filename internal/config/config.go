// Package config loads and persists spendash configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

const defaultServerURL = "http://localhost:8000"

// Config holds all spendash configuration.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Auth       AuthConfig       `toml:"auth"`
	Appearance AppearanceConfig `toml:"appearance"`
	TUI        TUIConfig        `toml:"tui"`
}

// ServerConfig points at the expense manager backend.
type ServerConfig struct {
	URL string `toml:"url"`
}

// AuthConfig holds the saved bearer token.
type AuthConfig struct {
	Token string `toml:"token,omitempty"`
	Email string `toml:"email,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// TUIConfig holds dashboard behavior settings.
type TUIConfig struct {
	AutoRefresh        bool `toml:"auto_refresh"`
	RefreshIntervalSec int  `toml:"refresh_interval_sec"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{URL: defaultServerURL},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		TUI: TUIConfig{
			RefreshIntervalSec: 60,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spendash")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// SnapshotPath returns the path of the offline snapshot database.
func SnapshotPath() string {
	return filepath.Join(ConfigDir(), "snapshot.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment variables override file values so the config read happens
// exactly once, at composition time.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv layers environment overrides on top of the file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SPENDASH_SERVER_URL"); v != "" {
		cfg.Server.URL = v
	}
	if v := os.Getenv("SPENDASH_TOKEN"); v != "" {
		cfg.Auth.Token = v
	}
	if v := os.Getenv("SPENDASH_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv("SPENDASH_REFRESH_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TUI.RefreshIntervalSec = n
		}
	}
}

// Save writes the config to disk. The file holds the auth token, so it
// is created private to the user.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
