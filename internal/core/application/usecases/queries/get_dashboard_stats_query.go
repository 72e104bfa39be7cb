package queries

import (
	"errors"

	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves shop-wide counters for the staff
// dashboard. Staff and admins only.
type GetDashboardStatsQuery struct {
	actor ports.Actor

	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a dashboard statistics query.
func NewGetDashboardStatsQuery(actor ports.Actor) (GetDashboardStatsQuery, error) {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return GetDashboardStatsQuery{}, err
	}
	if !actor.Role.IsStaffOrAdmin() {
		return GetDashboardStatsQuery{}, errs.NewForbiddenError(actor.ID.String(), "view dashboard statistics")
	}

	return GetDashboardStatsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetDashboardStatsQuery) Actor() ports.Actor {
	return q.actor
}

// DashboardStatsResponse aggregates the order book and the money side.
// Revenue sums the order totals of completed (Ready or Delivered) work;
// outstanding is the billed money not yet collected.
type DashboardStatsResponse struct {
	ActiveOrders     int     `json:"activeOrders"`
	CompletedOrders  int     `json:"completedOrders"`
	CancelledOrders  int     `json:"cancelledOrders"`
	UnassignedOrders int     `json:"unassignedOrders"`
	Revenue          float64 `json:"revenue"`
	Outstanding      float64 `json:"outstanding"`
}
