package ports

import (
	"context"

	"tailorshop/internal/core/domain/model/bill"
	"tailorshop/internal/core/domain/model/kernel"
)

// BillRepository defines the persistence contract for bill aggregates.
// A bill is keyed by its own identifier but looked up by order: the
// one-bill-per-order invariant makes the order id the natural handle.
type BillRepository interface {
	// Add persists a new bill aggregate to storage.
	Add(ctx context.Context, aggregate *bill.Bill) error

	// Update persists changes to an existing bill aggregate through the
	// same version-guarded conditional write as orders; a lost race
	// yields ConflictError.
	Update(ctx context.Context, aggregate *bill.Bill) error

	// GetByOrder retrieves the bill raised for the given order.
	// Returns ObjectNotFoundError when the order has not been billed.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*bill.Bill, error)
}
