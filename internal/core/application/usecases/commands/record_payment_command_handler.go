package commands

import (
	"context"
	"time"

	"tailorshop/internal/pkg/errs"
)

// RecordPaymentCommandHandler handles the business logic for taking a
// payment against an order's bill. The bill enforces that payments are
// positive and never overpay.
type RecordPaymentCommandHandler struct {
	uowFactory BillUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory BillUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command. Only staff and admins take
// payments; an unbilled order fails with ObjectNotFoundError.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role.IsStaffOrAdmin() {
		return errs.NewForbiddenError(cmd.Actor().ID.String(), "record a payment")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	billRepo := uow.BillRepository()
	aggregate, err := billRepo.GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.RecordPayment(cmd.Amount(), cmd.Method(), cmd.Reference(), time.Now().UTC()); err != nil {
		return err
	}

	if err = billRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
