package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != defaultServerURL {
		t.Errorf("Server.URL = %q, want default", cfg.Server.URL)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q", cfg.Appearance.Theme)
	}
	if cfg.TUI.RefreshIntervalSec != 60 {
		t.Errorf("RefreshIntervalSec = %d", cfg.TUI.RefreshIntervalSec)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "spendash"), 0o755); err != nil {
		t.Fatal(err)
	}
	file := `[server]
url = "http://filehost:9000"

[auth]
token = "file-token"
`
	if err := os.WriteFile(filepath.Join(dir, "spendash", "config.toml"), []byte(file), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SPENDASH_SERVER_URL", "http://envhost:7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != "http://envhost:7000" {
		t.Errorf("env should win: Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Auth.Token != "file-token" {
		t.Errorf("file token should survive: %q", cfg.Auth.Token)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Server.URL = "http://example.test:8000"
	cfg.Auth.Token = "tok"
	cfg.Auth.Email = "a@b.c"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file should exist after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if loaded.Server.URL != cfg.Server.URL || loaded.Auth.Token != "tok" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
