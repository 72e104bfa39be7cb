package queries

import (
	"context"

	"tailorshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler aggregates shop-wide counters for the
// staff dashboard.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the query. The order book counters come from one grouped
// pass over orders. Active means not yet Delivered or Cancelled; completed
// means Ready or Delivered, so a Ready order sits in both buckets until it
// leaves the shop. Revenue sums the order totals of completed orders;
// outstanding sums the unpaid remainder across bills.
func (h GetDashboardStatsQueryHandler) Handle(ctx context.Context, query GetDashboardStatsQuery) (DashboardStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsResponse{}, err
	}

	var resp DashboardStatsResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, assignment, COUNT(*)
		FROM orders
		GROUP BY status, assignment
	`).Rows()
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, assignment, count int
		if err = rows.Scan(&status, &assignment, &count); err != nil {
			return DashboardStatsResponse{}, err
		}

		current := order.Status(status)
		if current == order.Ready || current == order.Delivered {
			resp.CompletedOrders += count
		}

		switch current {
		case order.Delivered:
			// already counted above, no longer on the active book
		case order.Cancelled:
			resp.CancelledOrders += count
		default:
			resp.ActiveOrders += count
			if order.AssignmentState(assignment) == order.Unassigned {
				resp.UnassignedOrders += count
			}
		}
	}
	if err = rows.Err(); err != nil {
		return DashboardStatsResponse{}, err
	}

	moneyRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status IN (?, ?)),
			(SELECT COALESCE(SUM(amount - amount_paid), 0) FROM bills)
	`, int(order.Ready), int(order.Delivered)).Rows()
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	defer moneyRows.Close()

	if moneyRows.Next() {
		if err = moneyRows.Scan(&resp.Revenue, &resp.Outstanding); err != nil {
			return DashboardStatsResponse{}, err
		}
	}
	if err = moneyRows.Err(); err != nil {
		return DashboardStatsResponse{}, err
	}

	return resp, nil
}
