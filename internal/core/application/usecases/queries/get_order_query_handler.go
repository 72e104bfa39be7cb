package queries

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order's full read model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Staff and admins read any order, a customer
// only their own and a tailor only the orders assigned to them.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	resp, err := scanOrderRow(rows, time.Now().UTC())
	if err != nil {
		return OrderResponse{}, err
	}

	if err = requireReadAccess(resp, query.Actor()); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// requireReadAccess scopes per-order reads the same way the write side
// does: staff and admins see everything, customers their own orders,
// tailors their assignments.
func requireReadAccess(resp OrderResponse, actor ports.Actor) error {
	switch actor.Role {
	case kernel.RoleStaff, kernel.RoleAdmin:
		return nil
	case kernel.RoleCustomer:
		if resp.CustomerID.IsEqual(actor.ID) {
			return nil
		}
	case kernel.RoleTailor:
		if resp.TailorID != nil && resp.TailorID.IsEqual(actor.ID) {
			return nil
		}
	}
	return errs.NewForbiddenError(actor.ID.String(), "view this order")
}
