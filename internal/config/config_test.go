package config

import (
	"testing"
	"time"
)

func TestDefaultConfig_GitSettings(t *testing.T) {
	cfg := DefaultConfig()
	if time.Duration(cfg.Git.CommandTimeout) != 30*time.Second {
		t.Errorf("expected default command timeout 30s, got %v", cfg.Git.CommandTimeout)
	}
	if cfg.Git.DefaultRemote != "origin" {
		t.Errorf("expected default remote 'origin', got %q", cfg.Git.DefaultRemote)
	}
	if time.Duration(cfg.Git.SlowThreshold) != 5*time.Second {
		t.Errorf("expected default slow threshold 5s, got %v", cfg.Git.SlowThreshold)
	}
}

func TestDefaultConfig_FirstRun(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.FirstRun {
		t.Error("a fresh config must mark the first run")
	}
	if !cfg.Notifications.Enabled {
		t.Error("expected notifications enabled by default")
	}
}

func TestDurationRoundTrip(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("45s")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if time.Duration(d) != 45*time.Second {
		t.Errorf("expected 45s, got %v", d)
	}

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "45s" {
		t.Errorf("expected '45s', got %q", text)
	}
}

func TestDurationRejectsGarbage(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("not a duration")); err == nil {
		t.Error("expected an error for malformed duration")
	}
}
