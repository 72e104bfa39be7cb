package commands

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// AddNoteCommandHandler handles the business logic for appending notes.
// Notes never affect the lifecycle status.
type AddNoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddNoteCommandHandler creates a handler for appending notes.
func NewAddNoteCommandHandler(uowFactory OrderUoWFactory) AddNoteCommandHandler {
	return AddNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-note command.
//
// Staff and admins may note any order, a customer only their own orders and
// a tailor only the orders assigned to them.
func (h *AddNoteCommandHandler) Handle(ctx context.Context, cmd AddNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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

	if err = requireOrderAccess(aggregate, cmd.Actor(), "add a note"); err != nil {
		return err
	}

	if err = aggregate.AddNote(cmd.Actor().ID, cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// requireOrderAccess enforces the ownership rules shared by per-order
// operations: staff and admins see everything, customers only their own
// orders, tailors only their assignments.
func requireOrderAccess(aggregate *order.Order, actor ports.Actor, action string) error {
	switch actor.Role {
	case kernel.RoleStaff, kernel.RoleAdmin:
		return nil
	case kernel.RoleCustomer:
		if aggregate.Customer().IsEqual(actor.ID) {
			return nil
		}
	case kernel.RoleTailor:
		if aggregate.Tailor() != nil && aggregate.Tailor().IsEqual(actor.ID) {
			return nil
		}
	}
	return errs.NewForbiddenError(actor.ID.String(), action)
}
