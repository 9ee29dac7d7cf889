package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.HTTPPort != 4040 {
		t.Errorf("HTTPPort = %d, want 4040", cfg.Server.HTTPPort)
	}
	if cfg.Cache.Path != "./data/cache" {
		t.Errorf("Cache.Path = %q", cfg.Cache.Path)
	}
	if cfg.ShowExpiration() != 24*time.Hour {
		t.Errorf("ShowExpiration() = %v, want 24h", cfg.ShowExpiration())
	}
	if len(cfg.Languages) != 1 || cfg.Languages[0] != "en" {
		t.Errorf("Languages = %v, want [en]", cfg.Languages)
	}
	if !cfg.Metrics.Enabled {
		t.Errorf("Metrics.Enabled = false, want true")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.HTTPPort != 4040 {
		t.Errorf("HTTPPort = %d, want default", cfg.Server.HTTPPort)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  http_port: 9090
cache:
  path: /tmp/subscout-cache
  show_expiration: 48
languages:
  - fr
  - de
addic7ed:
  username: user
  password: pass
metrics:
  enabled: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %d, want 9090", cfg.Server.HTTPPort)
	}
	if cfg.Cache.Path != "/tmp/subscout-cache" {
		t.Errorf("Cache.Path = %q", cfg.Cache.Path)
	}
	if cfg.ShowExpiration() != 48*time.Hour {
		t.Errorf("ShowExpiration() = %v, want 48h", cfg.ShowExpiration())
	}
	if len(cfg.Languages) != 2 || cfg.Languages[0] != "fr" || cfg.Languages[1] != "de" {
		t.Errorf("Languages = %v, want [fr de]", cfg.Languages)
	}
	if cfg.Addic7ed.Username != "user" || cfg.Addic7ed.Password != "pass" {
		t.Errorf("Addic7ed = %+v", cfg.Addic7ed)
	}
	if cfg.Metrics.Enabled {
		t.Errorf("Metrics.Enabled = true, want false")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load() error = nil, want parse error")
	}
}
