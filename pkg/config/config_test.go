package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SHOPFRONT_STATE_PATH", filepath.Join(t.TempDir(), "state.db"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8080/api/v1" {
		t.Fatalf("unexpected API base URL %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Fatalf("unexpected API timeout %v", cfg.API.Timeout)
	}
	if cfg.State.Backend != "sqlite" {
		t.Fatalf("unexpected state backend %q", cfg.State.Backend)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected dev env by default, got %q", cfg.App.Env)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SHOPFRONT_API_BASE_URL", "https://shop.example.com/api/v1")
	t.Setenv("SHOPFRONT_STATE_BACKEND", "redis")
	t.Setenv("SHOPFRONT_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("SHOPFRONT_STATE_PATH", filepath.Join(t.TempDir(), "state.db"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "https://shop.example.com/api/v1" {
		t.Fatalf("unexpected API base URL %q", cfg.API.BaseURL)
	}
	if cfg.State.Backend != "redis" {
		t.Fatalf("unexpected state backend %q", cfg.State.Backend)
	}
	if cfg.Redis.Address != "redis.internal:6380" {
		t.Fatalf("unexpected redis address %q", cfg.Redis.Address)
	}
}

func TestStateConfigDefaultPath(t *testing.T) {
	cfg := StateConfig{}
	if err := cfg.ensurePath(); err != nil {
		t.Fatalf("ensurePath: %v", err)
	}
	if cfg.Path == "" {
		t.Fatal("expected a default state path")
	}
	if filepath.Base(cfg.Path) != "state.db" {
		t.Fatalf("unexpected state file name in %q", cfg.Path)
	}
}
