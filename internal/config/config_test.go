package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("BTR_BASE_URL", "http://tracker.local:8766")
	t.Setenv("POSTGRES_URL", "postgres://u:p@localhost/bf")
	t.Setenv("CLICKHOUSE_URL", "clickhouse://localhost:9000/bf")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.DefaultGame != "bf4" {
		t.Errorf("DefaultGame = %q", cfg.DefaultGame)
	}
	if cfg.GametoolsBaseURL != "https://api.gametools.network" {
		t.Errorf("GametoolsBaseURL = %q", cfg.GametoolsBaseURL)
	}
	if cfg.UpstreamTimeout != 15*time.Second {
		t.Errorf("UpstreamTimeout = %v", cfg.UpstreamTimeout)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("expected default CORS origin")
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("POSTGRES_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing POSTGRES_URL")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DEFAULT_GAME", "bfv")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultGame != "bfv" {
		t.Errorf("DefaultGame = %q", cfg.DefaultGame)
	}
	if cfg.UpstreamTimeout != 5*time.Second {
		t.Errorf("UpstreamTimeout = %v", cfg.UpstreamTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}
