// Package token decodes the backend-issued session token on the client
// side. The client holds no verification key, so claims are extracted
// without checking the signature; the backend remains the authority on
// token validity. This package only classifies what the client can see
// locally (role, identity, expiry).
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrEthical07/exitpass/workflow"
)

// ErrMalformed is an exported constant or variable used by the exit pass client.
var ErrMalformed = errors.New("malformed session token")

// Claims defines a public type used by exitpass APIs.
//
// Claims instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Claims struct {
	Email     string
	Role      workflow.Role
	ExpiresAt time.Time
}

// ExpiredAt reports whether the token is expired at the given instant,
// honoring the decoder's leeway. A token without an exp claim never
// reports expired.
func (c *Claims) ExpiredAt(now time.Time, leeway time.Duration) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !c.ExpiresAt.Add(leeway).After(now)
}

// Config defines a public type used by exitpass APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Leeway time.Duration
}

// Decoder defines a public type used by exitpass APIs.
//
// Decoder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Decoder struct {
	config Config
}

type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewDecoder describes the newdecoder operation and its observable behavior.
//
// NewDecoder may return an error when input validation fails.
func NewDecoder(cfg Config) (*Decoder, error) {
	if cfg.Leeway < 0 || cfg.Leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}
	return &Decoder{config: cfg}, nil
}

// Leeway returns the configured expiry comparison leeway.
func (d *Decoder) Leeway() time.Duration {
	return d.config.Leeway
}

// Decode parses the token's claims without contacting the network and
// without signature verification. It fails with ErrMalformed when the
// input is not a structurally valid token or carries a role outside the
// closed enumeration. Expiry is not checked here; callers compare
// Claims.ExpiresAt against their clock.
func (d *Decoder) Decode(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrMalformed
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	var sc sessionClaims
	if _, _, err := parser.ParseUnverified(raw, &sc); err != nil {
		return nil, ErrMalformed
	}

	role, ok := workflow.ParseRole(sc.Role)
	if !ok {
		return nil, ErrMalformed
	}

	claims := &Claims{
		Email: sc.Email,
		Role:  role,
	}
	if sc.ExpiresAt != nil {
		claims.ExpiresAt = sc.ExpiresAt.Time
	}
	return claims, nil
}
