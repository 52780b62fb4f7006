package exitpass

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/MrEthical07/exitpass/internal/validate"
	"github.com/MrEthical07/exitpass/workflow"
)

// Login validates credentials locally and exchanges them for a session
// token. The token is returned, not persisted: the caller decides when
// to SaveSession, so a failed redirect never leaves a half-adopted
// session behind.
func (e *Engine) Login(ctx context.Context, email, password string, role Role) (string, error) {
	if e == nil {
		return "", ErrEngineNotReady
	}

	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if err := validate.Required([]validate.Field{
		{Name: "email", Value: email},
		{Name: "password", Value: password},
		{Name: "role", Value: string(role)},
	}); err != nil {
		return "", err
	}
	if _, ok := workflow.ParseRole(string(role)); !ok {
		return "", ErrRoleMismatch
	}
	if err := validate.Email(email); err != nil {
		return "", err
	}

	tok, err := e.api.Login(ctx, email, password, role)
	if err != nil {
		return "", err
	}
	e.log.Info("login succeeded", zap.String("role", string(role)))
	return tok, nil
}

// SaveSession persists a token obtained from Login. Kept separate from
// Login on purpose; see that method.
func (e *Engine) SaveSession(ctx context.Context, tok string) error {
	if e == nil {
		return ErrEngineNotReady
	}
	return e.store.Save(ctx, tok)
}

// Signup validates the registration input locally and registers the
// account. Validation order matches the original flow: required fields
// first (short-circuit), then email format, then password match and
// strength, then the optional phone number. Failures never reach the
// network.
func (e *Engine) Signup(ctx context.Context, in SignupInput) (string, error) {
	if e == nil {
		return "", ErrEngineNotReady
	}

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Number = strings.TrimSpace(in.Number)
	in.Password = strings.TrimSpace(in.Password)
	in.PasswordConfirm = strings.TrimSpace(in.PasswordConfirm)

	if err := validate.Required([]validate.Field{
		{Name: "firstName", Value: in.FirstName},
		{Name: "lastName", Value: in.LastName},
		{Name: "email", Value: in.Email},
		{Name: "password", Value: in.Password},
		{Name: "passwordConfirm", Value: in.PasswordConfirm},
		{Name: "role", Value: string(in.Role)},
	}); err != nil {
		return "", err
	}
	if _, ok := workflow.ParseRole(string(in.Role)); !ok {
		return "", ErrRoleMismatch
	}
	if err := validate.Email(in.Email); err != nil {
		return "", err
	}
	if err := validate.Password(in.Password, in.PasswordConfirm); err != nil {
		return "", err
	}
	if err := validate.Phone(in.Number); err != nil {
		return "", err
	}

	msg, err := e.api.Signup(ctx, in)
	if err != nil {
		return "", err
	}
	e.log.Info("signup succeeded", zap.String("role", string(in.Role)))
	return msg, nil
}
