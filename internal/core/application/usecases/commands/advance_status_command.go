package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/guard"
)

var ErrAdvanceStatusCommandIsNotConstructed = errors.New(
	"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
)

// AdvanceStatusCommand represents a request to move an order's lifecycle
// status forward by one step.
type AdvanceStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	requested order.Status
	actor     ports.Actor

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand creates a command to advance an order's status.
// The requested status must be a valid status value; whether it is a legal
// move from the order's current status is decided by the aggregate.
func NewAdvanceStatusCommand(
	orderID kernel.UUID,
	requested order.Status,
	actor ports.Actor,
) (AdvanceStatusCommand, error) {
	cmd := AdvanceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequested(requested),
		cmd.setActor(actor),
	); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requested returns the status the caller wants to move to.
func (c AdvanceStatusCommand) Requested() order.Status {
	return c.requested
}

// Actor returns the authenticated caller.
func (c AdvanceStatusCommand) Actor() ports.Actor {
	return c.actor
}

func (c *AdvanceStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceStatusCommand) setRequested(requested order.Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	c.requested = requested
	return nil
}

func (c *AdvanceStatusCommand) setActor(actor ports.Actor) error {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
