package view

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/MrEthical07/exitpass"
	"github.com/MrEthical07/exitpass/internal/retrypolicy"
)

// Security is the gate-desk flow: a read-only form list with client-side
// search. It shares the admin view's bounded list-loading retry policy.
type Security struct {
	engine *exitpass.Engine
	log    *zap.Logger
	retry  retrypolicy.Policy
	forms  []exitpass.ExitForm
}

// NewSecurity describes the newsecurity operation and its observable behavior.
//
// NewSecurity may return an error when the configured retry policy is invalid.
func NewSecurity(engine *exitpass.Engine, logger *zap.Logger) (*Security, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := engine.Config().Retry
	policy, err := retrypolicy.New(cfg.MaxAttempts, cfg.Delay)
	if err != nil {
		return nil, err
	}
	return &Security{engine: engine, log: logger, retry: policy}, nil
}

// Init authenticates the stored session as security and loads the forms.
func (v *Security) Init(ctx context.Context) error {
	if _, err := v.engine.Authenticate(ctx, exitpass.RoleSecurity); err != nil {
		return err
	}
	return v.LoadForms(ctx)
}

// LoadForms fetches the form list, retrying per the view policy.
func (v *Security) LoadForms(ctx context.Context) error {
	return v.retry.Do(ctx, func(ctx context.Context) error {
		forms, err := v.engine.Forms(ctx)
		if err != nil {
			v.log.Error("failed to load exit forms", zap.Error(err))
			return err
		}
		v.forms = forms
		return nil
	})
}

// Forms returns the last loaded list; nil before LoadForms.
func (v *Security) Forms() []exitpass.ExitForm {
	return v.forms
}

// Search filters the loaded forms by case-insensitive substring match on
// email or full name. An empty term returns everything.
func (v *Security) Search(term string) []exitpass.ExitForm {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return v.forms
	}
	var out []exitpass.ExitForm
	for _, f := range v.forms {
		if strings.Contains(strings.ToLower(f.Email), term) ||
			strings.Contains(strings.ToLower(f.FullName), term) {
			out = append(out, f)
		}
	}
	return out
}

// Logout clears the stored session.
func (v *Security) Logout(ctx context.Context) error {
	return v.engine.Logout(ctx)
}
