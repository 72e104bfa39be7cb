package commands

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// New orders start in OrderPlaced status with no tailor assigned.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
//
// Staff and admins may place orders for any customer; a customer may only
// place orders for themselves. Tailors do not place orders.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	switch actor.Role {
	case kernel.RoleCustomer:
		if !actor.ID.IsEqual(cmd.CustomerID()) {
			return errs.NewForbiddenError(actor.ID.String(), "place an order for another customer")
		}
	case kernel.RoleStaff, kernel.RoleAdmin:
	default:
		return errs.NewForbiddenError(actor.ID.String(), "place an order")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ItemType(),
		cmd.Measurements(),
		cmd.Fabric(),
		cmd.ExpectedDelivery(),
		cmd.TotalAmount(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
