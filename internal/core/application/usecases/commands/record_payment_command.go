package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a payment taken against an order's bill.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	amount    float64
	method    string
	reference string
	actor     ports.Actor

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment. The amount
// must be positive and the method named; the reference is optional.
func NewRecordPaymentCommand(
	orderID kernel.UUID,
	amount float64,
	method string,
	reference string,
	actor ports.Actor,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
		cmd.setMethod(method),
		cmd.setActor(actor),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the order whose bill is being paid.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the payment amount.
func (c RecordPaymentCommand) Amount() float64 {
	return c.amount
}

// Method returns how the payment was made.
func (c RecordPaymentCommand) Method() string {
	return c.method
}

// Reference returns the external receipt or transaction identifier.
func (c RecordPaymentCommand) Reference() string {
	return c.reference
}

// Actor returns the authenticated caller.
func (c RecordPaymentCommand) Actor() ports.Actor {
	return c.actor
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("method")
	}
	c.method = method
	return nil
}

func (c *RecordPaymentCommand) setActor(actor ports.Actor) error {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
