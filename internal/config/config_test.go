// ABOUTME: Tests for config loading, environment overrides, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TICBUDDY_PROXY_URL", "")
	t.Setenv("TICBUDDY_AUTH_TOKEN", "")
	t.Setenv("TICBUDDY_DATA_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ProxyURL != "" || cfg.AuthToken != "" || cfg.DataDir != "" {
		t.Errorf("missing file should yield empty config, got %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("TICBUDDY_PROXY_URL", "")
	t.Setenv("TICBUDDY_AUTH_TOKEN", "")
	t.Setenv("TICBUDDY_DATA_DIR", "")

	dir := filepath.Join(configHome, "ticbuddy")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	data, _ := json.Marshal(Config{ProxyURL: "https://proxy.example/api", AuthToken: "secret"})
	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ProxyURL != "https://proxy.example/api" || cfg.AuthToken != "secret" {
		t.Errorf("file values not loaded: %+v", cfg)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "ticbuddy")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	data, _ := json.Marshal(Config{ProxyURL: "https://file.example"})
	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	t.Setenv("TICBUDDY_PROXY_URL", "https://env.example")
	t.Setenv("TICBUDDY_AUTH_TOKEN", "")
	t.Setenv("TICBUDDY_DATA_DIR", "/tmp/ticbuddy-data")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ProxyURL != "https://env.example" {
		t.Errorf("ProxyURL = %q, env should win over file", cfg.ProxyURL)
	}
	if cfg.DataDir != "/tmp/ticbuddy-data" {
		t.Errorf("DataDir = %q, want the env value", cfg.DataDir)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "ticbuddy")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{broken"), 0600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("broken config file should fail loudly, not fall back silently")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TICBUDDY_PROXY_URL", "")
	t.Setenv("TICBUDDY_AUTH_TOKEN", "")
	t.Setenv("TICBUDDY_DATA_DIR", "")

	saved := &Config{ProxyURL: "https://proxy.example", AuthToken: "tok"}
	if err := saved.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ProxyURL != saved.ProxyURL || cfg.AuthToken != saved.AuthToken {
		t.Errorf("round trip = %+v, want %+v", cfg, saved)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	if got := ExpandPath("~/data"); got != filepath.Join(home, "data") {
		t.Errorf("ExpandPath(~/data) = %q", got)
	}
	if got := ExpandPath("~"); got != home {
		t.Errorf("ExpandPath(~) = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandPath(/abs/path) = %q, want unchanged", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want empty", got)
	}
}

func TestGetDataDirDefault(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	cfg := &Config{}
	if got := cfg.GetDataDir(); got != filepath.Join(dataHome, "ticbuddy") {
		t.Errorf("GetDataDir = %q, want XDG default", got)
	}

	cfg.DataDir = "/explicit/dir"
	if got := cfg.GetDataDir(); got != "/explicit/dir" {
		t.Errorf("GetDataDir = %q, want configured value", got)
	}
}
