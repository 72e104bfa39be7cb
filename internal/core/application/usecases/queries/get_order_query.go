// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read through raw SQL over the GORM connection, bypassing
// the aggregates: read models never enforce business rules, only access
// scoping. Derived values (urgency, bill status) are computed on read and
// never stored.
package queries

import (
	"errors"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its full payload.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   ports.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch one order.
func NewGetOrderQuery(orderID kernel.UUID, actor ports.Actor) (GetOrderQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.ID.Validate(),
		actor.Role.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the authenticated caller.
func (q GetOrderQuery) Actor() ports.Actor {
	return q.actor
}

// NoteResponse is one entry of an order's note trail.
type NoteResponse struct {
	AuthorID kernel.UUID `json:"authorId"`
	Text     string      `json:"text"`
	At       time.Time   `json:"at"`
}

// OrderResponse is the full read model of an order. Urgency is derived from
// the expected delivery date at query time.
type OrderResponse struct {
	ID               kernel.UUID        `json:"id"`
	CustomerID       kernel.UUID        `json:"customerId"`
	TailorID         *kernel.UUID       `json:"tailorId,omitempty"`
	Status           string             `json:"status"`
	Assignment       string             `json:"assignment"`
	ItemType         string             `json:"itemType"`
	Measurements     map[string]float64 `json:"measurements"`
	FabricSource     string             `json:"fabricSource"`
	FabricName       string             `json:"fabricName,omitempty"`
	Notes            []NoteResponse     `json:"notes"`
	ExpectedDelivery time.Time          `json:"expectedDelivery"`
	TotalAmount      float64            `json:"totalAmount"`
	Urgency          string             `json:"urgency"`
	CreatedAt        time.Time          `json:"createdAt"`
	StartedAt        *time.Time         `json:"startedAt,omitempty"`
	Version          int                `json:"version"`
}
