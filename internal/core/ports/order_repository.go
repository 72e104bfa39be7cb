// Package ports defines the interfaces between the core and the adapters.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate through a
	// version-guarded conditional write. When another writer got there
	// first the update fails with ConflictError and nothing is written;
	// the caller refetches and retries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by the given customer,
	// newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByTailor retrieves the tailor's work queue: every non-terminal
	// order currently assigned to them.
	GetByTailor(ctx context.Context, tailorID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order, newest first. Backs the staff board.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllActive retrieves every order that is neither Delivered nor
	// Cancelled. Used by the delivery reminder sweep.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
