// Package workflow models the lifecycle of a hostel exit form: Pending at
// submission, then Approved or Rejected by an admin, both terminal. All
// functions are pure; they take a form value and return the next form
// value, never touching storage or the network.
package workflow

import (
	"errors"
	"strings"
	"time"

	"github.com/MrEthical07/exitpass/internal/validate"
)

var (
	// ErrAlreadyFinalized is an exported constant or variable used by the exit pass client.
	ErrAlreadyFinalized = errors.New("form already finalized")
	// ErrReasonTooShort is an exported constant or variable used by the exit pass client.
	ErrReasonTooShort = errors.New("rejection reason must be at least 5 characters")
	// ErrPastDate is an exported constant or variable used by the exit pass client.
	ErrPastDate = errors.New("exit date must be today or later")
	// ErrInvalidDate is an exported constant or variable used by the exit pass client.
	ErrInvalidDate = errors.New("exit date is not a valid date")
	// ErrPermissionDenied is an exported constant or variable used by the exit pass client.
	ErrPermissionDenied = errors.New("role not permitted for this transition")
)

// minReasonLength applies after trimming surrounding whitespace.
const minReasonLength = 5

// DateLayout is the wire format for the exit date, day granularity.
const DateLayout = "2006-01-02"

// Role defines a public type used by exitpass APIs.
//
// Role instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Role string

const (
	// RoleStudent is an exported constant or variable used by the exit pass client.
	RoleStudent Role = "student"
	// RoleAdmin is an exported constant or variable used by the exit pass client.
	RoleAdmin Role = "admin"
	// RoleSecurity is an exported constant or variable used by the exit pass client.
	RoleSecurity Role = "security"
)

// ParseRole maps a wire string onto the closed role enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleAdmin, RoleSecurity:
		return Role(s), true
	}
	return "", false
}

// Status defines a public type used by exitpass APIs.
//
// Status instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Status string

const (
	// StatusPending is an exported constant or variable used by the exit pass client.
	StatusPending Status = "Pending"
	// StatusApproved is an exported constant or variable used by the exit pass client.
	StatusApproved Status = "Approved"
	// StatusRejected is an exported constant or variable used by the exit pass client.
	StatusRejected Status = "Rejected"
)

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Form is one student's exit request. Email is the identity key: the
// backend keeps at most one active form per student email, and a new
// submission supersedes the prior record.
type Form struct {
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Hostel       string `json:"hostel"`
	RoomNo       string `json:"roomNo"`
	Purpose      string `json:"purpose"`
	Destination  string `json:"destination"`
	Date         string `json:"date"`
	ParentNo     string `json:"parentNo"`
	WhoseRequest string `json:"whoseRequest"`
	Status       Status `json:"status"`
	Reason       string `json:"reason"`
	Locale       string `json:"locale"`
}

// requiredFields is the declared validation order; the first empty field
// is reported and the rest are not inspected.
func requiredFields(f Form) []validate.Field {
	return []validate.Field{
		{Name: "fullName", Value: f.FullName},
		{Name: "hostel", Value: f.Hostel},
		{Name: "roomNo", Value: f.RoomNo},
		{Name: "destination", Value: f.Destination},
		{Name: "purpose", Value: f.Purpose},
		{Name: "date", Value: f.Date},
	}
}

// Submit validates a new exit request and returns it in the Pending
// state with all provided fields preserved verbatim. Only students may
// submit. The date must parse as DateLayout and fall on now's day or
// later, compared in now's location.
func Submit(f Form, caller Role, now time.Time) (Form, error) {
	if caller != RoleStudent {
		return f, ErrPermissionDenied
	}
	if err := validate.Required(requiredFields(f)); err != nil {
		return f, err
	}
	day, err := time.ParseInLocation(DateLayout, f.Date, now.Location())
	if err != nil {
		return f, ErrInvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return f, ErrPastDate
	}
	f.Status = StatusPending
	f.Reason = ""
	return f, nil
}

// Approve moves a Pending form to Approved and clears any prior reason.
// Terminal forms are immutable: re-approving fails with
// ErrAlreadyFinalized and the form is returned unchanged.
func Approve(f Form, caller Role) (Form, error) {
	if caller != RoleAdmin {
		return f, ErrPermissionDenied
	}
	if f.Status.Terminal() {
		return f, ErrAlreadyFinalized
	}
	f.Status = StatusApproved
	f.Reason = ""
	return f, nil
}

// Reject moves a Pending form to Rejected, storing the trimmed reason.
// The reason must be at least 5 characters after trimming.
func Reject(f Form, caller Role, reason string) (Form, error) {
	if caller != RoleAdmin {
		return f, ErrPermissionDenied
	}
	if f.Status.Terminal() {
		return f, ErrAlreadyFinalized
	}
	reason = strings.TrimSpace(reason)
	if len(reason) < minReasonLength {
		return f, ErrReasonTooShort
	}
	f.Status = StatusRejected
	f.Reason = reason
	return f, nil
}
