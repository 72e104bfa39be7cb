package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"
	"tailorshop/internal/core/domain/services"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// MarkReadyCommandHandler handles the business logic for marking an order
// ready for pickup. This is the Trial -> Ready move gated on an accepted
// assignment; the order's bill is raised in the same transaction.
type MarkReadyCommandHandler struct {
	uowFactory    UoWFactory
	billGenerator services.BillGenerator
	dispatcher    ports.NotificationDispatcher
}

// NewMarkReadyCommandHandler creates a handler for marking orders ready.
func NewMarkReadyCommandHandler(
	uowFactory UoWFactory,
	billGenerator services.BillGenerator,
	dispatcher ports.NotificationDispatcher,
) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		uowFactory:    uowFactory,
		billGenerator: billGenerator,
		dispatcher:    dispatcher,
	}
}

// Handle processes the mark-ready command. Staff and admins may mark any
// order; a tailor only their own.
func (h *MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Role.IsStaffOrAdmin() && actor.Role != kernel.RoleTailor {
		return errs.NewForbiddenError(actor.ID.String(), "mark an order ready")
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

	if actor.Role == kernel.RoleTailor {
		if aggregate.Tailor() == nil || !aggregate.Tailor().IsEqual(actor.ID) {
			return errs.NewForbiddenError(actor.ID.String(), "mark an order ready")
		}
	}

	if err = aggregate.MarkReady(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	billRepo := uow.BillRepository()
	existing, err := billRepo.GetByOrder(ctx, aggregate.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	generated, created, err := h.billGenerator.Generate(aggregate, existing, time.Now().UTC())
	if err != nil {
		return err
	}
	if created {
		if err = billRepo.Add(ctx, generated); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.dispatcher,
		fmt.Sprintf("Order %s (%s) is ready for pickup", aggregate.ID(), aggregate.ItemType()),
		notification.TypeSuccess,
		notification.PriorityHigh,
		[]kernel.Role{kernel.RoleStaff},
		[]kernel.UUID{aggregate.Customer()},
	)

	return nil
}
