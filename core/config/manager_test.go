package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adalundhe/promptforge/core/errors"
)

func TestManager_DefaultsWithoutFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.yaml"))

	if err := m.Load(); err != nil {
		t.Fatalf("Load with missing file should fall back to defaults: %v", err)
	}

	cfg := m.Get()
	if cfg.Enhancement.Enabled {
		t.Error("enhancement should default to disabled")
	}
	if cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("cache TTL = %v, want 30m", cfg.Cache.TTL)
	}
	if cfg.Matcher.MemoSize != 128 {
		t.Errorf("memo size = %d, want 128", cfg.Matcher.MemoSize)
	}
}

func TestManager_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
enhancement:
  enabled: true
  provider: openai
  style: structured
  timeout: 10s
cache:
  ttl: 5m
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(path)
	if err := m.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := m.Get()
	if !cfg.Enhancement.Enabled {
		t.Error("enhancement should be enabled")
	}
	if cfg.Enhancement.Provider != "openai" {
		t.Errorf("provider = %s, want openai", cfg.Enhancement.Provider)
	}
	if cfg.Enhancement.Style != "structured" {
		t.Errorf("style = %s, want structured", cfg.Enhancement.Style)
	}
	if cfg.Enhancement.Timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", cfg.Enhancement.Timeout)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("cache TTL = %v, want 5m", cfg.Cache.TTL)
	}

	// Unset fields keep their defaults.
	if cfg.Matcher.MemoSize != 128 {
		t.Errorf("memo size = %d, want default 128", cfg.Matcher.MemoSize)
	}
}

func TestManager_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PROMPTFORGE_ENHANCEMENT_PROVIDER", "openai")
	t.Setenv("PROMPTFORGE_CACHE_TTL", "1m")

	m := NewManager(filepath.Join(t.TempDir(), "missing.yaml"))
	if err := m.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := m.Get()
	if cfg.Enhancement.Provider != "openai" {
		t.Errorf("provider = %s, want env override openai", cfg.Enhancement.Provider)
	}
	if cfg.Cache.TTL != time.Minute {
		t.Errorf("cache TTL = %v, want env override 1m", cfg.Cache.TTL)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.Enhancement.Provider = "cohere"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("unknown provider should fail validation")
	}
	if errors.GetTier(err) != errors.TierUserFixable {
		t.Errorf("tier = %s, want user_fixable", errors.GetTier(err))
	}

	cfg = DefaultConfig()
	cfg.Enhancement.Style = "ornate"
	if cfg.Validate() == nil {
		t.Error("unknown style should fail validation")
	}

	cfg = DefaultConfig()
	cfg.Cache.TTL = -time.Second
	if cfg.Validate() == nil {
		t.Error("negative cache ttl should fail validation")
	}
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("enhancement:\n  provider: cohere\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(path)
	if err := m.Load(); err == nil {
		t.Fatal("invalid provider in file should fail Load")
	}

	// Previous config stays active after a failed load.
	if m.Get().Enhancement.Provider != "anthropic" {
		t.Error("failed load should not replace the active config")
	}
}

func TestManager_OnChange(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.yaml"))

	var seen *Config
	m.OnChange(func(cfg *Config) { seen = cfg })

	if err := m.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if seen == nil {
		t.Fatal("OnChange watcher should fire on load")
	}
	if seen != m.Get() {
		t.Error("watcher should receive the active config")
	}
}

func TestManager_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("cache:\n  ttl: 5m\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(path)
	if err := m.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer m.Close()

	reloaded := make(chan *Config, 1)
	m.OnChange(func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})

	if err := m.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("cache:\n  ttl: 2m\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Cache.TTL != 2*time.Minute {
			t.Errorf("reloaded TTL = %v, want 2m", cfg.Cache.TTL)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
