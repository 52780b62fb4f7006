package exitpass

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MrEthical07/exitpass/session"
)

func validConfig() Config {
	cfg := defaultConfig()
	cfg.API.BaseURL = "http://127.0.0.1:5000/api/v1"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base URL", func(c *Config) { c.API.BaseURL = "  " }},
		{"relative base URL", func(c *Config) { c.API.BaseURL = "/api/v1" }},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }},
		{"negative leeway", func(c *Config) { c.Token.Leeway = -time.Second }},
		{"leeway over bound", func(c *Config) { c.Token.Leeway = 3 * time.Minute }},
		{"zero attempts", func(c *Config) { c.Retry.MaxAttempts = 0 }},
		{"zero delay", func(c *Config) { c.Retry.Delay = 0 }},
		{"negative redis TTL", func(c *Config) { c.Session.RedisTTL = -time.Minute }},
		{"unknown environment", func(c *Config) { c.Environment = "staging" }},
	}
	for _, tc := range cases {
		cfg := validConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("EXITPASS_API_BASE_URL", "http://localhost:5000/api/v1")
	t.Setenv("EXITPASS_API_TIMEOUT", "30s")
	t.Setenv("EXITPASS_TOKEN_LEEWAY", "90s")
	t.Setenv("EXITPASS_REDIS_PREFIX", "hostel")
	t.Setenv("EXITPASS_ENV", "production")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:5000/api/v1" {
		t.Fatalf("unexpected base URL %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.API.Timeout)
	}
	if cfg.Token.Leeway != 90*time.Second {
		t.Fatalf("unexpected leeway %v", cfg.Token.Leeway)
	}
	if cfg.Session.RedisPrefix != "hostel" {
		t.Fatalf("unexpected prefix %q", cfg.Session.RedisPrefix)
	}
	if cfg.Environment != "production" {
		t.Fatalf("unexpected environment %q", cfg.Environment)
	}
	// Untouched settings keep their defaults.
	if cfg.Retry.MaxAttempts != 2 || cfg.Retry.Delay != 5*time.Second {
		t.Fatalf("retry defaults lost: %+v", cfg.Retry)
	}
}

func TestFromEnvRequiresBaseURL(t *testing.T) {
	t.Setenv("EXITPASS_API_BASE_URL", "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error without base URL")
	}
}

func TestFromEnvBadDuration(t *testing.T) {
	t.Setenv("EXITPASS_API_BASE_URL", "http://localhost:5000/api/v1")
	t.Setenv("EXITPASS_API_TIMEOUT", "soon")

	_, err := FromEnv()
	if err == nil || !strings.Contains(err.Error(), "EXITPASS_API_TIMEOUT") {
		t.Fatalf("expected timeout parse error, got %v", err)
	}
}

func TestBuilderIsOneShot(t *testing.T) {
	b := New().
		WithConfig(validConfig()).
		WithSessionStore(session.NewMemStore())

	if _, err := b.Build(); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("second build accepted")
	}
}

func TestBuilderRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Retry.MaxAttempts = 0
	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("invalid config accepted")
	}
}

func TestBuilderUsesConfiguredFilePath(t *testing.T) {
	cfg := validConfig()
	cfg.Session.FilePath = t.TempDir() + "/token"

	engine, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ctx := context.Background()
	if err := engine.SaveSession(ctx, "tok"); err != nil {
		t.Fatalf("save session: %v", err)
	}
	got, err := engine.StoredToken(ctx)
	if err != nil || got != "tok" {
		t.Fatalf("round trip through file store failed: %q, %v", got, err)
	}
}
