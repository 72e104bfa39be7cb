package commands

import (
	"errors"

	"tailorshop/internal/pkg/guard"
)

var ErrSendDeliveryRemindersCommandIsNotConstructed = errors.New(
	"SendDeliveryRemindersCommand must be created via NewSendDeliveryRemindersCommand constructor",
)

// SendDeliveryRemindersCommand triggers the daily sweep over active orders
// that are due soon or overdue. Carries no parameters; the sweep always
// covers every active order.
type SendDeliveryRemindersCommand struct {
	guard guard.ConstructorGuard
}

// NewSendDeliveryRemindersCommand creates a command to run the reminder sweep.
func NewSendDeliveryRemindersCommand() SendDeliveryRemindersCommand {
	return SendDeliveryRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SendDeliveryRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendDeliveryRemindersCommandIsNotConstructed)
}
