package view

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MrEthical07/exitpass"
	"github.com/MrEthical07/exitpass/internal/retrypolicy"
)

// Admin is the approval flow: list every exit form, approve or reject by
// student email. List loading carries the bounded retry policy from the
// engine configuration (one retry after a fixed delay by default); that
// resilience is a property of this view, not of the shared API client.
type Admin struct {
	engine *exitpass.Engine
	log    *zap.Logger
	retry  retrypolicy.Policy
	forms  []exitpass.ExitForm
}

// NewAdmin describes the newadmin operation and its observable behavior.
//
// NewAdmin may return an error when the configured retry policy is invalid.
func NewAdmin(engine *exitpass.Engine, logger *zap.Logger) (*Admin, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := engine.Config().Retry
	policy, err := retrypolicy.New(cfg.MaxAttempts, cfg.Delay)
	if err != nil {
		return nil, err
	}
	return &Admin{engine: engine, log: logger, retry: policy}, nil
}

// Init authenticates the stored session as admin and loads the forms.
func (v *Admin) Init(ctx context.Context) error {
	if _, err := v.engine.Authenticate(ctx, exitpass.RoleAdmin); err != nil {
		return err
	}
	return v.LoadForms(ctx)
}

// LoadForms fetches the form list, retrying per the view policy. Each
// failed attempt is reported to the log before the retry fires.
func (v *Admin) LoadForms(ctx context.Context) error {
	err := v.retry.Do(ctx, func(ctx context.Context) error {
		forms, err := v.engine.Forms(ctx)
		if err != nil {
			v.log.Error("failed to load exit forms", zap.Error(err))
			return err
		}
		v.forms = forms
		return nil
	})
	return err
}

// Forms returns the last loaded list; nil before LoadForms.
func (v *Admin) Forms() []exitpass.ExitForm {
	return v.forms
}

func (v *Admin) find(email string) (exitpass.ExitForm, error) {
	for _, f := range v.forms {
		if f.Email == email {
			return f, nil
		}
	}
	return exitpass.ExitForm{}, fmt.Errorf("no exit form for %q", email)
}

// Approve transitions the named student's form to Approved and reloads
// the list.
func (v *Admin) Approve(ctx context.Context, email string) (exitpass.ExitForm, error) {
	form, err := v.find(email)
	if err != nil {
		return exitpass.ExitForm{}, err
	}
	next, err := v.engine.ApproveForm(ctx, form)
	if err != nil {
		return form, err
	}
	if err := v.LoadForms(ctx); err != nil {
		v.log.Warn("form reload after approve failed", zap.Error(err))
	}
	return next, nil
}

// Reject transitions the named student's form to Rejected with the given
// reason and reloads the list.
func (v *Admin) Reject(ctx context.Context, email, reason string) (exitpass.ExitForm, error) {
	form, err := v.find(email)
	if err != nil {
		return exitpass.ExitForm{}, err
	}
	next, err := v.engine.RejectForm(ctx, form, reason)
	if err != nil {
		return form, err
	}
	if err := v.LoadForms(ctx); err != nil {
		v.log.Warn("form reload after reject failed", zap.Error(err))
	}
	return next, nil
}
