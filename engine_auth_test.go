package exitpass

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestAuthenticateNoStoredToken(t *testing.T) {
	engine, _, calls := newTestEngine(t, nil)

	_, err := engine.Authenticate(context.Background(), RoleStudent)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if *calls != 0 {
		t.Fatalf("authenticate touched the network: %d calls", *calls)
	}
}

func TestAuthenticateMalformedToken(t *testing.T) {
	engine, store, _ := newTestEngine(t, nil)
	ctx := context.Background()

	if err := store.Save(ctx, "garbage-token"); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	if _, err := engine.Authenticate(ctx, RoleStudent); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestAuthenticateRoleMismatch(t *testing.T) {
	engine, store, _ := newTestEngine(t, nil)
	ctx := context.Background()

	tok := signTestToken(t, "a@b.com", RoleStudent, time.Now().Add(time.Hour))
	if err := store.Save(ctx, tok); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	for _, required := range []Role{RoleAdmin, RoleSecurity} {
		if _, err := engine.Authenticate(ctx, required); !errors.Is(err, ErrRoleMismatch) {
			t.Fatalf("required %q: expected ErrRoleMismatch, got %v", required, err)
		}
	}

	// The token survives a role mismatch; only expiry purges.
	if _, err := store.Load(ctx); err != nil {
		t.Fatalf("token purged on role mismatch: %v", err)
	}
}

func TestAuthenticateExpiredPurgesStore(t *testing.T) {
	engine, store, _ := newTestEngine(t, nil)
	ctx := context.Background()

	tok := signTestToken(t, "a@b.com", RoleStudent, time.Now().Add(-time.Minute))
	if err := store.Save(ctx, tok); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	if _, err := engine.Authenticate(ctx, RoleStudent); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected purged store, got %v", err)
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	engine, store, _ := newTestEngine(t, nil)
	ctx := context.Background()

	tok := signTestToken(t, "a@b.com", RoleAdmin, time.Now().Add(time.Hour))
	if err := store.Save(ctx, tok); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	got, err := engine.Authenticate(ctx, RoleAdmin)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got != tok {
		t.Fatal("authenticate returned a different token")
	}

	// An empty required role accepts any valid session.
	if _, err := engine.Authenticate(ctx, ""); err != nil {
		t.Fatalf("role-free authenticate failed: %v", err)
	}
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	engine, _, calls := newTestEngine(t, nil)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
		role     Role
		want     error
	}{
		{"missing email", "", "pw", RoleStudent, nil},
		{"missing password", "a@b.com", "", RoleStudent, nil},
		{"bad role", "a@b.com", "pw", Role("root"), ErrRoleMismatch},
		{"bad email", "not-an-email", "pw", RoleStudent, ErrInvalidEmail},
	}
	for _, tc := range cases {
		_, err := engine.Login(ctx, tc.email, tc.password, tc.role)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if tc.want == nil {
			var missing *MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("%s: expected MissingFieldError, got %v", tc.name, err)
			}
		}
	}
	if *calls != 0 {
		t.Fatalf("validation failures reached the network: %d calls", *calls)
	}
}

func TestLoginPersistsOnlyOnExplicitSave(t *testing.T) {
	engine, store, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"token":"T"}}`))
	}))
	ctx := context.Background()

	tok, err := engine.Login(ctx, "a@b.com", "x", RoleStudent)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tok != "T" {
		t.Fatalf("expected token T, got %q", tok)
	}

	if _, err := store.Load(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("login persisted the token on its own: %v", err)
	}

	if err := engine.SaveSession(ctx, tok); err != nil {
		t.Fatalf("save session: %v", err)
	}
	got, err := engine.StoredToken(ctx)
	if err != nil {
		t.Fatalf("stored token: %v", err)
	}
	if got != "T" {
		t.Fatalf("expected stored T, got %q", got)
	}
}

func TestLoginServerError(t *testing.T) {
	engine, _, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))

	_, err := engine.Login(context.Background(), "a@b.com", "wrong", RoleStudent)
	if err == nil || err.Error() != "server error 401: Invalid credentials" {
		t.Fatalf("unexpected login error: %v", err)
	}
}

func TestSignupValidatesBeforeNetwork(t *testing.T) {
	engine, _, calls := newTestEngine(t, nil)
	ctx := context.Background()

	base := SignupInput{
		FirstName:       "Alice",
		LastName:        "Kumar",
		Email:           "alice@hostel.edu",
		Number:          "9876543210",
		Password:        "long-enough",
		PasswordConfirm: "long-enough",
		Role:            RoleStudent,
	}

	mismatch := base
	mismatch.PasswordConfirm = "different-pw"
	if _, err := engine.Signup(ctx, mismatch); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}

	weak := base
	weak.Password, weak.PasswordConfirm = "short", "short"
	if _, err := engine.Signup(ctx, weak); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}

	badPhone := base
	badPhone.Number = "12-34"
	if _, err := engine.Signup(ctx, badPhone); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}

	badEmail := base
	badEmail.Email = "nope"
	if _, err := engine.Signup(ctx, badEmail); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	blank := base
	blank.FirstName = " "
	_, err := engine.Signup(ctx, blank)
	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "firstName" {
		t.Fatalf("expected firstName MissingFieldError, got %v", err)
	}

	if *calls != 0 {
		t.Fatalf("validation failures reached the network: %d calls", *calls)
	}

	// The optional phone may be blank.
	noPhone := base
	noPhone.Number = ""
	if _, err := engine.Signup(ctx, noPhone); err != nil {
		t.Fatalf("signup without phone failed: %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	engine, store, _ := newTestEngine(t, nil)
	ctx := context.Background()

	if err := store.Save(ctx, "tok"); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	if err := engine.Logout(ctx); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected cleared store, got %v", err)
	}
	// Logging out twice is fine.
	if err := engine.Logout(ctx); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
}
