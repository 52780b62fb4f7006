// Package session persists the opaque authentication token across client
// runs. One token lives under one fixed key; there is no multi-session
// bookkeeping.
//
// # Stores
//
// Three [Store] implementations are provided: [FileStore] (a single file
// on disk, the default), [RedisStore] (redis/go-redis, for clients that
// share a session across hosts), and [MemStore] (tests and throwaway
// sessions). Clear is idempotent on every implementation.
//
// # Architecture boundaries
//
// This package owns raw token persistence only. It does NOT decode
// claims, check expiry, or decide when a session is invalid; those
// responsibilities belong to the token package and the Engine.
//
// # What this package must NOT do
//
//   - Import exitpass, token, or workflow (no upward imports).
//   - Interpret the token contents in any way.
//   - Swallow storage failures; every path reports an error.
package session
