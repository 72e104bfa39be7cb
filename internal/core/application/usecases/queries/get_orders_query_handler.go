package queries

import (
	"context"
	"database/sql"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves role-scoped order lists from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the list query for the caller's role. The tailor queue
// excludes terminal orders; customer and staff views include everything,
// newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.rowsForActor(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now().UTC()
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows, now)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrdersQueryHandler) rowsForActor(ctx context.Context, query GetOrdersQuery) (*sql.Rows, error) {
	db := h.db.WithContext(ctx)
	actor := query.Actor()

	switch actor.Role {
	case kernel.RoleCustomer:
		return db.Raw(`
			SELECT `+orderSelectColumns+`
			FROM orders
			WHERE customer_id = ?
			ORDER BY created_at DESC
		`, actor.ID.Bytes()).Rows()
	case kernel.RoleTailor:
		return db.Raw(`
			SELECT `+orderSelectColumns+`
			FROM orders
			WHERE tailor_id = ? AND status NOT IN ?
			ORDER BY expected_delivery
		`, actor.ID.Bytes(), []int{int(order.Delivered), int(order.Cancelled)}).Rows()
	default:
		return db.Raw(`
			SELECT ` + orderSelectColumns + `
			FROM orders
			ORDER BY created_at DESC
		`).Rows()
	}
}
