package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable is an exported constant or variable used by the exit pass client.
var ErrRedisUnavailable = errors.New("redis unavailable")

// defaultRedisPrefix namespaces the token key when the caller gives none.
const defaultRedisPrefix = "xp"

// RedisStore keeps the token under a single fixed key. A non-zero TTL
// lets Redis expire stale sessions on its own; the Engine still treats
// the decoded exp claim as authoritative.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore describes the newredisstore operation and its observable behavior.
//
// NewRedisStore may return an error when input validation fails.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis store requires a client")
	}
	if ttl < 0 {
		return nil, errors.New("invalid TTL configuration")
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: client, key: prefix + ":token", ttl: ttl}, nil
}

// Load describes the load operation and its observable behavior.
//
// Load returns ErrNoSession when no token is stored and wraps transport
// failures in ErrRedisUnavailable.
func (s *RedisStore) Load(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSession
		}
		return "", errors.Join(ErrRedisUnavailable, err)
	}
	if val == "" {
		return "", ErrNoSession
	}
	return val, nil
}

// Save describes the save operation and its observable behavior.
//
// Save overwrites any prior token and applies the configured TTL.
func (s *RedisStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return errors.Join(ErrRedisUnavailable, err)
	}
	return nil
}

// Clear deletes the token key. Deleting an absent key succeeds.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrRedisUnavailable, err)
	}
	return nil
}
