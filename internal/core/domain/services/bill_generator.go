package services

import (
	"time"

	"tailorshop/internal/core/domain/model/bill"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/errs"
)

// BillGenerator is a domain service that raises the bill for an order when
// it reaches a billable point in its lifecycle.
//
// Business rules:
//   - a bill is raised only for a billable order (Ready or later)
//   - exactly one bill exists per order; generation is idempotent and the
//     caller passes the existing bill (nil when none) to enforce that
//   - the billed amount is the order's agreed total, fixed at generation
type BillGenerator struct{}

// NewBillGenerator creates a new BillGenerator instance.
func NewBillGenerator() BillGenerator {
	return BillGenerator{}
}

// Generate raises the bill for the order, or returns the existing one
// unchanged when the order has already been billed.
//
// Returns the bill and whether it was newly created. Fails with
// InvalidStateError when the order's status is not billable.
func (g BillGenerator) Generate(o *order.Order, existing *bill.Bill, at time.Time) (*bill.Bill, bool, error) {
	if err := o.Validate(); err != nil {
		return nil, false, err
	}

	if existing != nil {
		if err := existing.Validate(); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	if !o.Status().IsBillable() {
		return nil, false, errs.NewInvalidStateError("order", o.Status().String(), "generate a bill")
	}

	b, err := bill.NewBill(kernel.NewUUID(), o.ID(), o.TotalAmount(), at)
	if err != nil {
		return nil, false, err
	}

	return b, true, nil
}
