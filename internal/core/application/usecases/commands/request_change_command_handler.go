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

// RequestChangeCommandHandler handles the business logic for assignment
// change requests. The lifecycle status is untouched; the admin role is
// notified with the reason after commit.
type RequestChangeCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewRequestChangeCommandHandler creates a handler for change requests.
func NewRequestChangeCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.NotificationDispatcher,
) RequestChangeCommandHandler {
	return RequestChangeCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the change request command.
func (h *RequestChangeCommandHandler) Handle(ctx context.Context, cmd RequestChangeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role != kernel.RoleTailor {
		return errs.NewForbiddenError(cmd.Actor().ID.String(), "request an assignment change")
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

	if err = aggregate.RequestChange(cmd.Actor().ID, cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.dispatcher,
		fmt.Sprintf("Change requested on order %s: %s", aggregate.ID(), cmd.Reason()),
		notification.TypeWarning,
		notification.PriorityHigh,
		[]kernel.Role{kernel.RoleAdmin},
		nil,
	)

	return nil
}
