package exitpass

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/MrEthical07/exitpass/api"
	"github.com/MrEthical07/exitpass/session"
	"github.com/MrEthical07/exitpass/token"
)

// Builder defines a public type used by exitpass APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	http   *http.Client
	store  session.Store
	redis  *redis.Client
	logger *zap.Logger

	built bool
}

// New describes the new operation and its observable behavior.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithHTTPClient overrides the transport; the configured API timeout is
// not applied to a caller-supplied client.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.http = client
	return b
}

// WithSessionStore overrides the token store; it takes precedence over
// WithRedis and the default file store.
func (b *Builder) WithSessionStore(store session.Store) *Builder {
	b.store = store
	return b
}

// WithRedis stores the session token in Redis instead of the default
// file store.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithLogger describes the withlogger operation and its observable behavior.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation or component wiring
// fails. A Builder is one-shot: reusing it after a successful Build is an
// error.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := b.store
	if store == nil && b.redis != nil {
		rs, err := session.NewRedisStore(b.redis, cfg.Session.RedisPrefix, cfg.Session.RedisTTL)
		if err != nil {
			return nil, err
		}
		store = rs
	}
	if store == nil {
		path := cfg.Session.FilePath
		if path == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(dir, "exitpass", "token")
		}
		fs, err := session.NewFileStore(path)
		if err != nil {
			return nil, err
		}
		store = fs
	}

	decoder, err := token.NewDecoder(token.Config{Leeway: cfg.Token.Leeway})
	if err != nil {
		return nil, err
	}

	httpClient := b.http
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout}
	}

	client, err := api.NewClient(cfg.API.BaseURL, httpClient, store, logger)
	if err != nil {
		return nil, err
	}

	b.built = true

	return &Engine{
		config:  cfg,
		store:   store,
		decoder: decoder,
		api:     client,
		log:     logger,
	}, nil
}
