package session

import (
	"context"
	"errors"
)

// ErrNoSession is an exported constant or variable used by the exit pass client.
var ErrNoSession = errors.New("no stored session")

// Store defines a public type used by exitpass APIs.
//
// A Store persists exactly one opaque token. Load returns ErrNoSession
// when nothing is stored. Save overwrites any prior token. Clear removes
// the token and is idempotent: clearing an empty store succeeds.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
