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

// StartWorkCommandHandler handles the business logic for beginning
// production. The status moves OrderPlaced -> Cutting; admin and the
// customer are told after commit.
type StartWorkCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewStartWorkCommandHandler creates a handler for starting production.
func NewStartWorkCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.NotificationDispatcher,
) StartWorkCommandHandler {
	return StartWorkCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the start-work command. Only the assigned tailor starts
// work, and only on an order they have accepted.
func (h *StartWorkCommandHandler) Handle(ctx context.Context, cmd StartWorkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role != kernel.RoleTailor {
		return errs.NewForbiddenError(cmd.Actor().ID.String(), "start work")
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

	if aggregate.Tailor() == nil || !aggregate.Tailor().IsEqual(cmd.Actor().ID) {
		return errs.NewForbiddenError(cmd.Actor().ID.String(), "start work")
	}

	if err = aggregate.StartWork(cmd.Actor().ID, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.dispatcher,
		fmt.Sprintf("Work started on order %s (%s)", aggregate.ID(), aggregate.ItemType()),
		notification.TypeInfo,
		notification.PriorityMedium,
		[]kernel.Role{kernel.RoleAdmin},
		[]kernel.UUID{aggregate.Customer()},
	)

	return nil
}
