package ports

import (
	"context"

	"tailorshop/internal/core/domain/model/kernel"
)

// TailorDirectory answers whether a tailor is known to the shop. Assignment
// must not hand an order to an identifier nobody works under.
type TailorDirectory interface {
	// Exists reports whether the given id belongs to a registered tailor.
	Exists(ctx context.Context, tailorID kernel.UUID) (bool, error)
}
