package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("got port %q, want 3000", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development mode by default")
	}
	if cfg.SweepInterval != 60*time.Second {
		t.Errorf("got sweep interval %v, want 60s", cfg.SweepInterval)
	}
	if cfg.AutoReplyEnabled {
		t.Errorf("auto-reply should default to disabled")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "production")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("AUTO_REPLY_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 192.168.0.0/16")

	cfg := Load()

	if cfg.Port != "8081" {
		t.Errorf("got port %q", cfg.Port)
	}
	if cfg.IsDevelopment() {
		t.Errorf("production env reported as development")
	}
	if cfg.SweepInterval != 30*time.Second {
		t.Errorf("got sweep interval %v", cfg.SweepInterval)
	}
	if !cfg.AutoReplyEnabled {
		t.Errorf("auto-reply not enabled")
	}
	if len(cfg.RateLimitWhitelist) != 2 {
		t.Errorf("got whitelist %v", cfg.RateLimitWhitelist)
	}
}

func TestLoadRejectsBadSweepInterval(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "never")

	cfg := Load()
	if cfg.SweepInterval != 60*time.Second {
		t.Errorf("got sweep interval %v, want default", cfg.SweepInterval)
	}
}
