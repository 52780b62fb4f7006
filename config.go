package exitpass

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config defines a public type used by exitpass APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API         APIConfig
	Session     SessionConfig
	Token       TokenConfig
	Retry       RetryConfig
	Environment string // "development" (default) or "production"
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by exitpass APIs.
//
// BaseURL is the backend base path including the version prefix, e.g.
// "http://127.0.0.1:5000/api/v1". It is never hardcoded by the SDK.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration // applied to the default HTTP client; 0 disables
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by exitpass APIs.
//
// FilePath locates the token file for the default file store; empty means
// <user config dir>/exitpass/token. RedisPrefix and RedisTTL apply only
// when a Redis client is supplied to the Builder.
type SessionConfig struct {
	FilePath    string
	RedisAddr   string
	RedisPrefix string
	RedisTTL    time.Duration
}

/*
====================================
TOKEN CONFIG
====================================
*/

// TokenConfig defines a public type used by exitpass APIs.
//
// Leeway widens the expiry comparison to absorb clock skew between the
// client and the backend. Bounded to 2 minutes, as elsewhere.
type TokenConfig struct {
	Leeway time.Duration
}

/*
====================================
RETRY CONFIG
====================================
*/

// RetryConfig defines a public type used by exitpass APIs.
//
// The bounded list-loading retry used by the admin and security views:
// MaxAttempts counts the first attempt, so the default of 2 attempts with
// a 5s delay means one retry after 5 seconds.
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout: 15 * time.Second,
		},
		Session: SessionConfig{
			RedisPrefix: "xp",
		},
		Token: TokenConfig{
			Leeway: 0,
		},
		Retry: RetryConfig{
			MaxAttempts: 2,
			Delay:       5 * time.Second,
		},
		Environment: "development",
	}
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation fails.
func (c Config) Validate() error {
	base := strings.TrimSpace(c.API.BaseURL)
	if base == "" {
		return errors.New("API base URL is required")
	}
	u, err := url.Parse(base)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("invalid API base URL %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return errors.New("API timeout must not be negative")
	}
	if c.Token.Leeway < 0 || c.Token.Leeway > 2*time.Minute {
		return errors.New("invalid leeway configuration")
	}
	if c.Retry.MaxAttempts < 1 {
		return errors.New("retry MaxAttempts must be at least 1")
	}
	if c.Retry.Delay <= 0 {
		return errors.New("retry Delay must be positive")
	}
	if c.Session.RedisTTL < 0 {
		return errors.New("session RedisTTL must not be negative")
	}
	switch c.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	return nil
}

// FromEnv loads configuration from EXITPASS_* environment variables,
// reading a .env file first when one exists (missing files are fine).
// Unset variables keep their defaults; EXITPASS_API_BASE_URL is the one
// required setting.
func FromEnv() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := defaultConfig()
	cfg.API.BaseURL = os.Getenv("EXITPASS_API_BASE_URL")
	if v := os.Getenv("EXITPASS_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("EXITPASS_API_TIMEOUT: %w", err)
		}
		cfg.API.Timeout = d
	}
	if v := os.Getenv("EXITPASS_SESSION_FILE"); v != "" {
		cfg.Session.FilePath = v
	}
	if v := os.Getenv("EXITPASS_REDIS_ADDR"); v != "" {
		cfg.Session.RedisAddr = v
	}
	if v := os.Getenv("EXITPASS_REDIS_PREFIX"); v != "" {
		cfg.Session.RedisPrefix = v
	}
	if v := os.Getenv("EXITPASS_TOKEN_LEEWAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("EXITPASS_TOKEN_LEEWAY: %w", err)
		}
		cfg.Token.Leeway = d
	}
	if v := os.Getenv("EXITPASS_ENV"); v != "" {
		cfg.Environment = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
