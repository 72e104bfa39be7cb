package queries

import (
	"errors"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/guard"
)

var ErrGetBillQueryIsNotConstructed = errors.New(
	"GetBillQuery must be created via NewGetBillQuery constructor",
)

// GetBillQuery retrieves the bill of an order together with its payment
// history.
type GetBillQuery struct {
	orderID kernel.UUID
	actor   ports.Actor

	guard guard.ConstructorGuard
}

// NewGetBillQuery creates a query to fetch the bill of one order.
func NewGetBillQuery(orderID kernel.UUID, actor ports.Actor) (GetBillQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.ID.Validate(),
		actor.Role.Validate(),
	); err != nil {
		return GetBillQuery{}, err
	}

	return GetBillQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBillQuery) Validate() error {
	return q.guard.Validate(ErrGetBillQueryIsNotConstructed)
}

// OrderID returns the order whose bill is requested.
func (q GetBillQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the authenticated caller.
func (q GetBillQuery) Actor() ports.Actor {
	return q.actor
}

// PaymentResponse is one recorded payment against a bill.
type PaymentResponse struct {
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference,omitempty"`
	At        time.Time `json:"at"`
}

// BillResponse is the read model of a bill. Status and the outstanding
// amount are derived from the paid total at query time, never stored.
type BillResponse struct {
	ID          kernel.UUID       `json:"id"`
	OrderID     kernel.UUID       `json:"orderId"`
	Amount      float64           `json:"amount"`
	AmountPaid  float64           `json:"amountPaid"`
	Outstanding float64           `json:"outstanding"`
	Status      string            `json:"status"`
	Payments    []PaymentResponse `json:"payments"`
	CreatedAt   time.Time         `json:"createdAt"`
	Version     int               `json:"version"`
}
