package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/services"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// AdvanceStatusCommandHandler handles the business logic for forward status
// moves. Reaching Ready additionally raises the order's bill, in the same
// transaction, exactly once per order.
type AdvanceStatusCommandHandler struct {
	uowFactory    UoWFactory
	billGenerator services.BillGenerator
	dispatcher    ports.NotificationDispatcher
}

// NewAdvanceStatusCommandHandler creates a handler for status advancement.
func NewAdvanceStatusCommandHandler(
	uowFactory UoWFactory,
	billGenerator services.BillGenerator,
	dispatcher ports.NotificationDispatcher,
) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		uowFactory:    uowFactory,
		billGenerator: billGenerator,
		dispatcher:    dispatcher,
	}
}

// Handle processes the advancement command.
//
// Staff and admins advance any order; a tailor only the orders assigned to
// them. The aggregate enforces the one-step-forward rule and the acceptance
// gate on leaving OrderPlaced.
func (h *AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Role.IsStaffOrAdmin() && actor.Role != kernel.RoleTailor {
		return errs.NewForbiddenError(actor.ID.String(), "advance order status")
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
			return errs.NewForbiddenError(actor.ID.String(), "advance order status")
		}
	}

	if err = aggregate.AdvanceTo(cmd.Requested()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.Status() == order.Ready {
		if err = h.generateBill(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyTransition(ctx, aggregate)
	return nil
}

// generateBill raises the bill when the order turns billable. Generation is
// idempotent: an order that somehow reaches Ready with a bill already on
// file keeps it.
func (h *AdvanceStatusCommandHandler) generateBill(ctx context.Context, uow UoW, aggregate *order.Order) error {
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
		return billRepo.Add(ctx, generated)
	}
	return nil
}

func (h *AdvanceStatusCommandHandler) notifyTransition(ctx context.Context, aggregate *order.Order) {
	switch aggregate.Status() {
	case order.Ready:
		notify(ctx, h.dispatcher,
			fmt.Sprintf("Order %s (%s) is ready for pickup", aggregate.ID(), aggregate.ItemType()),
			notification.TypeSuccess,
			notification.PriorityHigh,
			[]kernel.Role{kernel.RoleStaff},
			[]kernel.UUID{aggregate.Customer()},
		)
	case order.Delivered:
		notify(ctx, h.dispatcher,
			fmt.Sprintf("Order %s (%s) has been delivered", aggregate.ID(), aggregate.ItemType()),
			notification.TypeSuccess,
			notification.PriorityMedium,
			[]kernel.Role{kernel.RoleStaff},
			[]kernel.UUID{aggregate.Customer()},
		)
	default:
		notify(ctx, h.dispatcher,
			fmt.Sprintf("Order %s moved to %s", aggregate.ID(), aggregate.Status()),
			notification.TypeInfo,
			notification.PriorityLow,
			nil,
			[]kernel.UUID{aggregate.Customer()},
		)
	}
}
