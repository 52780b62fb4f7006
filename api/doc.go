// Package api is the authenticated HTTP client for the exit-pass backend
// REST surface. It builds URLs from a configured base path, attaches the
// bearer token when one is stored, serializes JSON bodies, and maps every
// failure into the Network/Server error taxonomy.
//
// # Architecture boundaries
//
// The client never retries: retry policy belongs to callers (the admin
// and security views carry a bounded fixed-delay policy). On success the
// raw parsed JSON body is returned unchanged; the {data: ...} envelope is
// a server convention the typed endpoint helpers interpret, not something
// Do enforces.
//
// # What this package must NOT do
//
//   - Decide navigation or user messaging on failure.
//   - Persist or decode session tokens (session and token packages own that).
//   - Retry or deduplicate requests.
package api
