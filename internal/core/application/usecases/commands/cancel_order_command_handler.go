package commands

import (
	"context"
	"fmt"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// CancelOrderCommandHandler handles the business logic for cancellation.
// Cancelling an already cancelled order is a successful no-op: nothing is
// written and nobody is notified twice.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.NotificationDispatcher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the cancellation command. Only staff and admins cancel;
// a delivered order cannot be cancelled.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role.IsStaffOrAdmin() {
		return errs.NewForbiddenError(cmd.Actor().ID.String(), "cancel an order")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changed, err := aggregate.Cancel(cmd.Actor().ID, cmd.Reason(), time.Now().UTC())
	if err != nil {
		return err
	}
	if !changed {
		return uow.Commit(ctx)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	targetUsers := []kernel.UUID{aggregate.Customer()}
	if aggregate.Tailor() != nil {
		targetUsers = append(targetUsers, *aggregate.Tailor())
	}

	notify(ctx, h.dispatcher,
		fmt.Sprintf("Order %s (%s) has been cancelled", aggregate.ID(), aggregate.ItemType()),
		notification.TypeWarning,
		notification.PriorityHigh,
		[]kernel.Role{kernel.RoleStaff},
		targetUsers,
	)

	return nil
}
