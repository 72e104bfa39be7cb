package queries

import (
	"errors"

	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order list scoped to the caller's role:
// customers see their own orders, tailors their active work queue, staff
// and admins the whole board.
type GetOrdersQuery struct {
	actor ports.Actor

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a role-scoped order list query.
func NewGetOrdersQuery(actor ports.Actor) (GetOrdersQuery, error) {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetOrdersQuery) Actor() ports.Actor {
	return q.actor
}
