package exitpass

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrEthical07/exitpass/session"
)

func signTestToken(t *testing.T, email string, role Role, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email": email,
		"role":  string(role),
	}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

// newTestEngine builds an engine against the given handler and returns
// the engine, its store, and a counter of requests the backend saw.
func newTestEngine(t *testing.T, handler http.Handler) (*Engine, session.Store, *int) {
	t.Helper()

	calls := new(int)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		if handler != nil {
			handler.ServeHTTP(w, r)
			return
		}
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	store := session.NewMemStore()
	engine, err := New().
		WithConfig(Config{
			API:         APIConfig{BaseURL: server.URL + "/api/v1", Timeout: 5 * time.Second},
			Retry:       RetryConfig{MaxAttempts: 2, Delay: 10 * time.Millisecond},
			Environment: "development",
		}).
		WithHTTPClient(server.Client()).
		WithSessionStore(store).
		Build()
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	return engine, store, calls
}
