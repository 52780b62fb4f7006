package exitpass

import (
	"errors"

	"github.com/MrEthical07/exitpass/internal/validate"
	"github.com/MrEthical07/exitpass/session"
	"github.com/MrEthical07/exitpass/token"
	"github.com/MrEthical07/exitpass/workflow"
)

var (
	// ErrUnauthenticated is an exported constant or variable used by the exit pass client.
	ErrUnauthenticated = errors.New("no authentication token found")
	// ErrRoleMismatch is an exported constant or variable used by the exit pass client.
	ErrRoleMismatch = errors.New("required role not held by session")
	// ErrSessionExpired is an exported constant or variable used by the exit pass client.
	ErrSessionExpired = errors.New("session expired")
	// ErrEngineNotReady is an exported constant or variable used by the exit pass client.
	ErrEngineNotReady = errors.New("engine not initialized")
)

// Sub-package sentinels, re-exported so callers can match every failure
// with errors.Is against this package alone.
var (
	// ErrTokenMalformed is an exported constant or variable used by the exit pass client.
	ErrTokenMalformed = token.ErrMalformed
	// ErrNoSession is an exported constant or variable used by the exit pass client.
	ErrNoSession = session.ErrNoSession
	// ErrAlreadyFinalized is an exported constant or variable used by the exit pass client.
	ErrAlreadyFinalized = workflow.ErrAlreadyFinalized
	// ErrReasonTooShort is an exported constant or variable used by the exit pass client.
	ErrReasonTooShort = workflow.ErrReasonTooShort
	// ErrPastDate is an exported constant or variable used by the exit pass client.
	ErrPastDate = workflow.ErrPastDate
	// ErrInvalidDate is an exported constant or variable used by the exit pass client.
	ErrInvalidDate = workflow.ErrInvalidDate
	// ErrPermissionDenied is an exported constant or variable used by the exit pass client.
	ErrPermissionDenied = workflow.ErrPermissionDenied
	// ErrInvalidEmail is an exported constant or variable used by the exit pass client.
	ErrInvalidEmail = validate.ErrInvalidEmail
	// ErrInvalidPhone is an exported constant or variable used by the exit pass client.
	ErrInvalidPhone = validate.ErrInvalidPhone
	// ErrWeakPassword is an exported constant or variable used by the exit pass client.
	ErrWeakPassword = validate.ErrWeakPassword
	// ErrPasswordMismatch is an exported constant or variable used by the exit pass client.
	ErrPasswordMismatch = validate.ErrPasswordMismatch
)

// MissingFieldError reports the first required field found empty; match
// with errors.As.
type MissingFieldError = validate.MissingFieldError
