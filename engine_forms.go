package exitpass

import (
	"context"

	"go.uber.org/zap"

	"github.com/MrEthical07/exitpass/workflow"
)

// Profile fetches the authenticated user's profile record.
func (e *Engine) Profile(ctx context.Context) (*Profile, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}
	return e.api.Profile(ctx)
}

// Forms lists every exit form visible to the caller's role. Callers own
// retry policy; this call issues exactly one request.
func (e *Engine) Forms(ctx context.Context) ([]ExitForm, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}
	return e.api.Forms(ctx)
}

// SubmitForm validates the exit request through the workflow rules and
// submits it. The stored session must hold the student role. A locale
// attached via WithLocale fills in forms that carry none. Validation
// failures are returned before any request is issued.
func (e *Engine) SubmitForm(ctx context.Context, form ExitForm) (ExitForm, error) {
	if e == nil {
		return form, ErrEngineNotReady
	}

	if _, err := e.Authenticate(ctx, RoleStudent); err != nil {
		return form, err
	}

	if form.Locale == "" {
		form.Locale = localeFromContext(ctx)
	}

	next, err := workflow.Submit(form, RoleStudent, e.clock())
	if err != nil {
		return form, err
	}

	if _, err := e.api.SubmitForm(ctx, next); err != nil {
		return form, err
	}
	e.log.Info("exit form submitted", zap.String("date", next.Date))
	return next, nil
}

// ApproveForm applies the Pending -> Approved transition locally and
// patches the backend. The stored session must hold the admin role;
// terminal forms fail with ErrAlreadyFinalized before any request is
// issued.
func (e *Engine) ApproveForm(ctx context.Context, form ExitForm) (ExitForm, error) {
	if e == nil {
		return form, ErrEngineNotReady
	}

	if _, err := e.Authenticate(ctx, RoleAdmin); err != nil {
		return form, err
	}

	next, err := workflow.Approve(form, RoleAdmin)
	if err != nil {
		return form, err
	}

	if err := e.api.UpdateFormStatus(ctx, next.Email, next.Status, next.Reason); err != nil {
		return form, err
	}
	e.log.Info("exit form approved", zap.String("email", next.Email))
	return next, nil
}

// RejectForm applies the Pending -> Rejected(reason) transition locally
// and patches the backend. The trimmed reason must be at least 5
// characters.
func (e *Engine) RejectForm(ctx context.Context, form ExitForm, reason string) (ExitForm, error) {
	if e == nil {
		return form, ErrEngineNotReady
	}

	if _, err := e.Authenticate(ctx, RoleAdmin); err != nil {
		return form, err
	}

	next, err := workflow.Reject(form, RoleAdmin, reason)
	if err != nil {
		return form, err
	}

	if err := e.api.UpdateFormStatus(ctx, next.Email, next.Status, next.Reason); err != nil {
		return form, err
	}
	e.log.Info("exit form rejected", zap.String("email", next.Email))
	return next, nil
}
