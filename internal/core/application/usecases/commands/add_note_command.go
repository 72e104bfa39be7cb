package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrAddNoteCommandIsNotConstructed = errors.New(
	"AddNoteCommand must be created via NewAddNoteCommand constructor",
)

// AddNoteCommand represents a request to append a note to an order's trail.
type AddNoteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	note    string
	actor   ports.Actor

	guard guard.ConstructorGuard
}

// NewAddNoteCommand creates a command to append a note.
func NewAddNoteCommand(orderID kernel.UUID, note string, actor ports.Actor) (AddNoteCommand, error) {
	cmd := AddNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNote(note),
		cmd.setActor(actor),
	); err != nil {
		return AddNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddNoteCommandIsNotConstructed)
}

// OrderID returns the order the note is for.
func (c AddNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Note returns the note text.
func (c AddNoteCommand) Note() string {
	return c.note
}

// Actor returns the authenticated caller.
func (c AddNoteCommand) Actor() ports.Actor {
	return c.actor
}

func (c *AddNoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddNoteCommand) setNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}
	c.note = note
	return nil
}

func (c *AddNoteCommand) setActor(actor ports.Actor) error {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
