package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrAssignTailorCommandIsNotConstructed = errors.New(
	"AssignTailorCommand must be created via NewAssignTailorCommand constructor",
)

// AssignTailorCommand represents a request to hand an order to a tailor.
// The reassign flag must be set explicitly to replace a tailor who is
// already pending or has accepted; it resets acceptance.
type AssignTailorCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tailorID kernel.UUID
	reassign bool
	actor    ports.Actor

	guard guard.ConstructorGuard
}

// NewAssignTailorCommand creates a command to assign a tailor to an order.
func NewAssignTailorCommand(
	orderID kernel.UUID,
	tailorID kernel.UUID,
	reassign bool,
	actor ports.Actor,
) (AssignTailorCommand, error) {
	cmd := AssignTailorCommand{
		reassign: reassign,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTailorID(tailorID),
		cmd.setActor(actor),
	); err != nil {
		return AssignTailorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTailorCommand) Validate() error {
	return c.guard.Validate(ErrAssignTailorCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignTailorCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TailorID returns the tailor receiving the order.
func (c AssignTailorCommand) TailorID() kernel.UUID {
	return c.tailorID
}

// Reassign reports whether an existing tailor may be replaced.
func (c AssignTailorCommand) Reassign() bool {
	return c.reassign
}

// Actor returns the authenticated caller.
func (c AssignTailorCommand) Actor() ports.Actor {
	return c.actor
}

func (c *AssignTailorCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignTailorCommand) setTailorID(tailorID kernel.UUID) error {
	if err := tailorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tailorId", err)
	}
	c.tailorID = tailorID
	return nil
}

func (c *AssignTailorCommand) setActor(actor ports.Actor) error {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
