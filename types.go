package exitpass

import (
	"github.com/MrEthical07/exitpass/api"
	"github.com/MrEthical07/exitpass/token"
	"github.com/MrEthical07/exitpass/workflow"
)

// Role defines a public type used by exitpass APIs.
//
// Role is the closed caller enumeration: student, admin, security. The
// zero value means "any role" where a role filter is optional.
type Role = workflow.Role

const (
	// RoleStudent is an exported constant or variable used by the exit pass client.
	RoleStudent = workflow.RoleStudent
	// RoleAdmin is an exported constant or variable used by the exit pass client.
	RoleAdmin = workflow.RoleAdmin
	// RoleSecurity is an exported constant or variable used by the exit pass client.
	RoleSecurity = workflow.RoleSecurity
)

// Status defines a public type used by exitpass APIs.
//
// Status is the closed exit-form lifecycle enumeration.
type Status = workflow.Status

const (
	// StatusPending is an exported constant or variable used by the exit pass client.
	StatusPending = workflow.StatusPending
	// StatusApproved is an exported constant or variable used by the exit pass client.
	StatusApproved = workflow.StatusApproved
	// StatusRejected is an exported constant or variable used by the exit pass client.
	StatusRejected = workflow.StatusRejected
)

// ExitForm is one student's exit request; see workflow.Form for the
// field-level invariants.
type ExitForm = workflow.Form

// Claims are the decoded session token claims.
type Claims = token.Claims

// Profile is the authenticated user record served by the backend.
type Profile = api.Profile

// SignupInput is the registration request body.
type SignupInput = api.SignupInput
