package queries

import (
	"errors"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves the caller's unread notifications,
// most urgent first.
type GetNotificationsQuery struct {
	actor ports.Actor

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates an unread-inbox query.
func NewGetNotificationsQuery(actor ports.Actor) (GetNotificationsQuery, error) {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetNotificationsQuery) Actor() ports.Actor {
	return q.actor
}

// NotificationResponse is the read model of one inbox entry.
type NotificationResponse struct {
	ID        kernel.UUID `json:"id"`
	Message   string      `json:"message"`
	Type      string      `json:"type"`
	Priority  string      `json:"priority"`
	CreatedAt time.Time   `json:"createdAt"`
}
