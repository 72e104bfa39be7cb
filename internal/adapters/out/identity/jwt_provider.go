// Package identity validates bearer tokens issued by the external identity
// service. Tokens are HS256-signed JWTs carrying the user id in the standard
// sub claim and the role in a custom role claim. Issuing and session
// management live on the identity service side; only validation happens here.
package identity

import (
	"fmt"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// JWTProvider implements IdentityProvider over HS256-signed JWTs.
type JWTProvider struct {
	secret []byte
}

// NewJWTProvider creates a provider validating tokens against the shared
// signing secret.
func NewJWTProvider(secret string) (*JWTProvider, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwtSecret")
	}

	return &JWTProvider{secret: []byte(secret)}, nil
}

// claims is the token payload: registered claims plus the role.
type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Authenticate validates the raw bearer token and returns the actor it
// identifies.
func (p *JWTProvider) Authenticate(token string) (ports.Actor, error) {
	if token == "" {
		return ports.Actor{}, errs.NewValueIsRequiredError("token")
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return p.secret, nil
	})
	if err != nil {
		return ports.Actor{}, errs.NewValueIsInvalidErrorWithCause("token", err)
	}

	payload, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return ports.Actor{}, errs.NewValueIsInvalidError("token")
	}

	userID, err := kernel.UUIDFromString(payload.Subject)
	if err != nil {
		return ports.Actor{}, errs.NewValueIsInvalidErrorWithCause("token", err)
	}

	role, err := kernel.RoleFromString(payload.Role)
	if err != nil {
		return ports.Actor{}, errs.NewValueIsInvalidErrorWithCause("token", err)
	}

	return ports.Actor{ID: userID, Role: role}, nil
}
