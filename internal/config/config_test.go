package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv removes a variable for the test while keeping t.Setenv's
// restore-on-cleanup behavior.
func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, "FIELD_CONFIG")
	clearEnv(t, "FIELD_BASE_URL")
	clearEnv(t, "FIELD_TIMEOUT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://foryougroup.eu.pythonanywhere.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 8*time.Second {
		t.Errorf("Timeout = %v, expected 8s", cfg.Timeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t, "FIELD_CONFIG")
	t.Setenv("FIELD_BASE_URL", "http://localhost:8000")
	t.Setenv("FIELD_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, expected 30s", cfg.Timeout)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: http://10.0.0.5:8000\ntimeout: 12s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FIELD_CONFIG", path)
	clearEnv(t, "FIELD_BASE_URL")
	clearEnv(t, "FIELD_TIMEOUT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "http://10.0.0.5:8000" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 12*time.Second {
		t.Errorf("Timeout = %v, expected 12s", cfg.Timeout)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	t.Setenv("FIELD_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Error("Load() succeeded with a missing config file")
	}
}
