// Package exitpass is the client SDK for a hostel exit-pass workflow
// backend: students submit exit requests, admins approve or reject them,
// and security staff read the approved passes.
//
// The package is the public surface. It exposes [Engine], [Builder],
// [Config], and value aliases for the domain types. The moving parts live
// in sub-packages: token (claims decoding), session (durable token
// stores), api (the authenticated HTTP client), workflow (the pure
// exit-form state machine), and view (the thin role-scoped flows).
//
// # Architecture boundaries
//
// The Engine classifies authentication failures and validates inputs; it
// never decides navigation or user messaging. Those belong to callers.
// Validation failures never reach the network. The workflow package is
// pure: a form value in, the next form value out.
//
// # What this package must NOT do
//
//   - Retry requests (callers own retry policy; see internal/retrypolicy).
//   - Verify token signatures (the client holds no key; the backend is
//     the authority and the decoder only reads claims).
//   - Keep ambient global token or role state; the session store is the
//     single owner of the persisted token.
package exitpass
