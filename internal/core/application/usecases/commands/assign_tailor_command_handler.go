package commands

import (
	"context"
	"fmt"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// AssignTailorCommandHandler handles the business logic for tailor
// assignment. Moves the assignment track to PendingAcceptance and notifies
// the tailor once the transaction commits.
type AssignTailorCommandHandler struct {
	uowFactory OrderUoWFactory
	directory  ports.TailorDirectory
	dispatcher ports.NotificationDispatcher
}

// NewAssignTailorCommandHandler creates a handler for tailor assignment.
func NewAssignTailorCommandHandler(
	uowFactory OrderUoWFactory,
	directory ports.TailorDirectory,
	dispatcher ports.NotificationDispatcher,
) AssignTailorCommandHandler {
	return AssignTailorCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		dispatcher: dispatcher,
	}
}

// Handle processes the assignment command.
//
// Only staff and admins assign. The tailor must exist in the directory;
// assigning to an unknown identifier fails with ObjectNotFoundError before
// the order is touched.
func (h *AssignTailorCommandHandler) Handle(ctx context.Context, cmd AssignTailorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role.IsStaffOrAdmin() {
		return errs.NewForbiddenError(cmd.Actor().ID.String(), "assign a tailor")
	}

	exists, err := h.directory.Exists(ctx, cmd.TailorID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("tailorId", cmd.TailorID().String())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.AssignTailor(cmd.TailorID(), cmd.Reassign()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.dispatcher,
		fmt.Sprintf("New order assigned to you: %s (%s)", aggregate.ItemType(), aggregate.ID()),
		notification.TypeInfo,
		notification.PriorityHigh,
		nil,
		[]kernel.UUID{cmd.TailorID()},
	)

	return nil
}
