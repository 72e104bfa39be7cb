package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/guard"
)

var ErrStartWorkCommandIsNotConstructed = errors.New(
	"StartWorkCommand must be created via NewStartWorkCommand constructor",
)

// StartWorkCommand represents the assigned tailor beginning production on an
// accepted order.
type StartWorkCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   ports.Actor

	guard guard.ConstructorGuard
}

// NewStartWorkCommand creates a command to begin production.
func NewStartWorkCommand(orderID kernel.UUID, actor ports.Actor) (StartWorkCommand, error) {
	cmd := StartWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return StartWorkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartWorkCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkCommandIsNotConstructed)
}

// OrderID returns the order to start.
func (c StartWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated caller.
func (c StartWorkCommand) Actor() ports.Actor {
	return c.actor
}

func (c *StartWorkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *StartWorkCommand) setActor(actor ports.Actor) error {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
