// Package validate holds the input validation helpers shared by the
// signup/login flows and the exit-form submission path. Every check here
// runs locally; a validation failure must never reach the network.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidEmail is an exported constant or variable used by the exit pass client.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidPhone is an exported constant or variable used by the exit pass client.
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrWeakPassword is an exported constant or variable used by the exit pass client.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
	// ErrPasswordMismatch is an exported constant or variable used by the exit pass client.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Same shapes the browser front end enforced before any request left the
// page: a loose email pattern and a 10-15 digit phone number.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10,15}$`)
)

const minPasswordLength = 8

// MissingFieldError reports the first required field found empty after
// trimming. Checks short-circuit: only one field is ever reported.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Field pairs a field name with its raw value for Required.
type Field struct {
	Name  string
	Value string
}

// Required checks fields in the given order and returns a
// *MissingFieldError for the first one that is empty after trimming.
func Required(fields []Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return &MissingFieldError{Field: f.Name}
		}
	}
	return nil
}

// Email describes the email operation and its observable behavior.
//
// Email may return an error when input validation fails.
func Email(s string) error {
	if !emailPattern.MatchString(strings.TrimSpace(s)) {
		return ErrInvalidEmail
	}
	return nil
}

// Phone validates an optional phone number. The empty string passes; a
// non-empty value must be 10-15 digits.
func Phone(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !phonePattern.MatchString(s) {
		return ErrInvalidPhone
	}
	return nil
}

// Password checks the confirmation match before minimum length; when
// both fail only the mismatch is reported.
func Password(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}
