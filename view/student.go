package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/MrEthical07/exitpass"
)

// Student is the exit-request submission flow. Init authenticates the
// stored session as a student and loads the profile; Submit validates
// and sends one exit form, then refreshes the profile so the caller sees
// the updated form status.
type Student struct {
	engine  *exitpass.Engine
	log     *zap.Logger
	profile *exitpass.Profile
}

// NewStudent describes the newstudent operation and its observable behavior.
func NewStudent(engine *exitpass.Engine, logger *zap.Logger) *Student {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Student{engine: engine, log: logger}
}

// Init describes the init operation and its observable behavior.
//
// Init may return an error when authentication or the profile load fails.
func (v *Student) Init(ctx context.Context) error {
	if _, err := v.engine.Authenticate(ctx, exitpass.RoleStudent); err != nil {
		return err
	}
	return v.loadProfile(ctx)
}

func (v *Student) loadProfile(ctx context.Context) error {
	profile, err := v.engine.Profile(ctx)
	if err != nil {
		v.log.Error("failed to load profile", zap.Error(err))
		return err
	}
	v.profile = profile
	return nil
}

// Profile returns the last loaded profile; nil before Init.
func (v *Student) Profile() *exitpass.Profile {
	return v.profile
}

// Submit fills the form's email from the profile when absent, submits it,
// and refreshes the profile on success.
func (v *Student) Submit(ctx context.Context, form exitpass.ExitForm) (exitpass.ExitForm, error) {
	if form.Email == "" && v.profile != nil {
		form.Email = v.profile.Email
	}
	next, err := v.engine.SubmitForm(ctx, form)
	if err != nil {
		return form, err
	}
	if err := v.loadProfile(ctx); err != nil {
		// The submission stood; a stale profile is the lesser problem.
		v.log.Warn("profile refresh after submit failed", zap.Error(err))
	}
	return next, nil
}

// Logout clears the stored session.
func (v *Student) Logout(ctx context.Context) error {
	return v.engine.Logout(ctx)
}
