package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrEthical07/exitpass/workflow"
)

// Backend route paths, relative to the configured base URL.
const (
	pathLogin      = "/users/login"
	pathSignup     = "/users/signup"
	pathProfile    = "/users/profile"
	pathForms      = "/users/forms"
	pathSubmitForm = "/users/submit-form"
	pathFormStatus = "/users/form-status"
)

// Profile is the authenticated user record returned by GET /users/profile.
type Profile struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	FormStatus string `json:"formStatus"`
}

// SignupInput is the request body for POST /users/signup.
type SignupInput struct {
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	Number          string        `json:"number"`
	Password        string        `json:"password"`
	PasswordConfirm string        `json:"passwordConfirm"`
	Role            workflow.Role `json:"role"`
}

// Login exchanges credentials for a session token. The token is returned
// to the caller and NOT persisted here; persisting is an explicit
// decision of the view that owns the session store.
func (c *Client) Login(ctx context.Context, email, password string, role workflow.Role) (string, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"role":     role,
	}
	raw, err := c.Do(ctx, http.MethodPost, pathLogin, body)
	if err != nil {
		return "", err
	}
	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", err
	}
	if envelope.Data.Token == "" {
		return "", errors.New("login response carried no token")
	}
	return envelope.Data.Token, nil
}

// Signup registers a new account and returns the server's message.
func (c *Client) Signup(ctx context.Context, in SignupInput) (string, error) {
	raw, err := c.Do(ctx, http.MethodPost, pathSignup, in)
	if err != nil {
		return "", err
	}
	return messageOf(raw), nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	raw, err := c.Do(ctx, http.MethodGet, pathProfile, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data struct {
			User Profile `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.User, nil
}

// Forms lists every exit form visible to the caller's role.
func (c *Client) Forms(ctx context.Context) ([]workflow.Form, error) {
	raw, err := c.Do(ctx, http.MethodGet, pathForms, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data struct {
			Forms []struct {
				Form workflow.Form `json:"form"`
			} `json:"forms"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	forms := make([]workflow.Form, 0, len(envelope.Data.Forms))
	for _, wrapper := range envelope.Data.Forms {
		forms = append(forms, wrapper.Form)
	}
	return forms, nil
}

// SubmitForm creates or supersedes the caller's exit form and returns
// the server's message. The form must already be validated; see
// workflow.Submit.
func (c *Client) SubmitForm(ctx context.Context, form workflow.Form) (string, error) {
	raw, err := c.Do(ctx, http.MethodPost, pathSubmitForm, form)
	if err != nil {
		return "", err
	}
	return messageOf(raw), nil
}

// UpdateFormStatus patches one form's status by student email.
func (c *Client) UpdateFormStatus(ctx context.Context, email string, status workflow.Status, reason string) error {
	body := map[string]any{
		"email":  email,
		"status": status,
		"reason": reason,
	}
	_, err := c.Do(ctx, http.MethodPatch, pathFormStatus, body)
	return err
}

func messageOf(raw json.RawMessage) string {
	var envelope struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &envelope)
	return envelope.Message
}
