// Package view holds the thin role-scoped flows over the Engine: the
// student submission flow, the admin approval flow, and the security
// read-only flow. Views authenticate before touching the backend, own the
// bounded list-loading retry policy, and surface every failure to their
// caller; nothing is swallowed. What a caller does with a failure
// (redirect, message, exit code) is its own decision.
package view
