package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrRequestChangeCommandIsNotConstructed = errors.New(
	"RequestChangeCommand must be created via NewRequestChangeCommand constructor",
)

// RequestChangeCommand represents a tailor flagging a problem with an
// assignment back to the admin instead of accepting it.
type RequestChangeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string
	actor   ports.Actor

	guard guard.ConstructorGuard
}

// NewRequestChangeCommand creates a command to flag an assignment problem.
// The reason is required; it is what the admin acts on.
func NewRequestChangeCommand(orderID kernel.UUID, reason string, actor ports.Actor) (RequestChangeCommand, error) {
	cmd := RequestChangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
		cmd.setActor(actor),
	); err != nil {
		return RequestChangeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestChangeCommand) Validate() error {
	return c.guard.Validate(ErrRequestChangeCommandIsNotConstructed)
}

// OrderID returns the order in question.
func (c RequestChangeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns why the tailor cannot take the order as assigned.
func (c RequestChangeCommand) Reason() string {
	return c.reason
}

// Actor returns the authenticated caller.
func (c RequestChangeCommand) Actor() ports.Actor {
	return c.actor
}

func (c *RequestChangeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestChangeCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}

func (c *RequestChangeCommand) setActor(actor ports.Actor) error {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
