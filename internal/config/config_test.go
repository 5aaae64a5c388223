package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Clear anything the environment might carry.
	for _, key := range []string{
		"SERVER_PORT", "GIN_MODE", "DATABASE_URL", "REDIS_URL",
		"SESSION_TTL_HOURS", "PRODUCTION", "ALLOWED_ORIGINS",
		"KEEPALIVE_URL", "KEEPALIVE_INTERVAL_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerPort != "5000" {
		t.Errorf("ServerPort = %q, want 5000", cfg.ServerPort)
	}
	if cfg.SessionTTL != 168*time.Hour {
		t.Errorf("SessionTTL = %v, want 168h", cfg.SessionTTL)
	}
	if cfg.Production {
		t.Error("Production should default to false")
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("AllowedOrigins = %v, want nil (allow-all)", cfg.AllowedOrigins)
	}
	if cfg.KeepaliveURL != "http://localhost:5000/health" {
		t.Errorf("KeepaliveURL = %q, want self health URL", cfg.KeepaliveURL)
	}
	if cfg.KeepaliveInterval != 2*time.Minute {
		t.Errorf("KeepaliveInterval = %v, want 2m", cfg.KeepaliveInterval)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SESSION_TTL_HOURS", "24")
	t.Setenv("PRODUCTION", "true")
	t.Setenv("KEEPALIVE_URL", "https://example.com/health")
	t.Setenv("ALLOWED_ORIGINS", "https://everestwc.com, https://admin.everestwc.com")

	cfg := Load()

	if cfg.ServerPort != "9000" {
		t.Errorf("ServerPort = %q, want 9000", cfg.ServerPort)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	if !cfg.Production {
		t.Error("Production should be true")
	}
	if cfg.KeepaliveURL != "https://example.com/health" {
		t.Errorf("KeepaliveURL = %q", cfg.KeepaliveURL)
	}
	want := []string{"https://everestwc.com", "https://admin.everestwc.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "not-a-number")
	t.Setenv("PRODUCTION", "definitely")

	cfg := Load()

	if cfg.SessionTTL != 168*time.Hour {
		t.Errorf("SessionTTL = %v, want default on parse failure", cfg.SessionTTL)
	}
	if cfg.Production {
		t.Error("Production should fall back to false on parse failure")
	}
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"https://a.com", 1},
		{"https://a.com,https://b.com", 2},
		{" https://a.com , , https://b.com ", 2},
	}

	for _, tt := range tests {
		got := parseOrigins(tt.raw)
		if len(got) != tt.want {
			t.Errorf("parseOrigins(%q) = %v, want %d entries", tt.raw, got, tt.want)
		}
	}
}
