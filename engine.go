package exitpass

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/MrEthical07/exitpass/api"
	"github.com/MrEthical07/exitpass/session"
	"github.com/MrEthical07/exitpass/token"
)

// Engine defines a public type used by exitpass APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config  Config
	store   session.Store
	decoder *token.Decoder
	api     *api.Client
	log     *zap.Logger

	// now is swapped in tests; nil means time.Now.
	now func() time.Time
}

func (e *Engine) clock() time.Time {
	if e.now != nil {
		return e.now()
	}
	return time.Now()
}

// API exposes the underlying client for callers that need raw access to
// the backend surface.
func (e *Engine) API() *api.Client {
	return e.api
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}

// StoredToken reads the persisted token without side effects. It returns
// ErrNoSession when nothing is stored.
func (e *Engine) StoredToken(ctx context.Context) (string, error) {
	if e == nil {
		return "", ErrEngineNotReady
	}
	return e.store.Load(ctx)
}

// Decode parses a token's claims locally; see token.Decoder.Decode.
func (e *Engine) Decode(raw string) (*Claims, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}
	return e.decoder.Decode(raw)
}

// Authenticate classifies the stored session against the required role
// and returns the raw token when it passes. The failure taxonomy, in
// order: ErrUnauthenticated (nothing stored), ErrTokenMalformed,
// ErrRoleMismatch (requiredRole set and not held), ErrSessionExpired
// (the stored token is also purged). The engine only classifies;
// redirect-to-login is the caller's decision.
func (e *Engine) Authenticate(ctx context.Context, requiredRole Role) (string, error) {
	if e == nil {
		return "", ErrEngineNotReady
	}

	raw, err := e.store.Load(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return "", ErrUnauthenticated
		}
		return "", err
	}

	claims, err := e.decoder.Decode(raw)
	if err != nil {
		return "", err
	}

	if requiredRole != "" && claims.Role != requiredRole {
		e.log.Warn("role mismatch",
			zap.String("required", string(requiredRole)),
			zap.String("held", string(claims.Role)))
		return "", ErrRoleMismatch
	}

	if claims.ExpiredAt(e.clock(), e.decoder.Leeway()) {
		if err := e.store.Clear(ctx); err != nil {
			e.log.Warn("failed to purge expired session", zap.Error(err))
		}
		return "", ErrSessionExpired
	}

	return raw, nil
}

// Logout clears the stored session. Clearing an empty store succeeds.
func (e *Engine) Logout(ctx context.Context) error {
	if e == nil {
		return ErrEngineNotReady
	}
	e.log.Info("logging out")
	return e.store.Clear(ctx)
}
