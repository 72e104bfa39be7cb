package ports

import (
	"tailorshop/internal/core/domain/model/kernel"
)

// Actor is the authenticated caller of an operation: the subject of a
// validated bearer token and the role claim it carried.
type Actor struct {
	ID   kernel.UUID
	Role kernel.Role
}

// IdentityProvider validates bearer tokens issued by the external identity
// service. Token issuing and session management live outside this service;
// only validation happens here.
type IdentityProvider interface {
	// Authenticate validates the raw bearer token and returns the actor it
	// identifies. Returns an error for missing, malformed, expired or
	// badly signed tokens, and for tokens without a recognized role claim.
	Authenticate(token string) (Actor, error)
}
