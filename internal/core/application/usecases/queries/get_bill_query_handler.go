package queries

import (
	"context"
	"encoding/json"

	"tailorshop/internal/core/domain/model/bill"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBillQueryHandler retrieves bill read models from the database.
type GetBillQueryHandler struct {
	db *gorm.DB
}

// NewGetBillQueryHandler creates a handler for bill queries.
// Requires a GORM database connection for query execution.
func NewGetBillQueryHandler(db *gorm.DB) GetBillQueryHandler {
	return GetBillQueryHandler{db: db}
}

// Handle executes the query. Staff and admins read any bill, a customer
// only the bills of their own orders. Tailors have no billing access.
func (h GetBillQueryHandler) Handle(ctx context.Context, query GetBillQuery) (BillResponse, error) {
	if err := query.Validate(); err != nil {
		return BillResponse{}, err
	}

	actor := query.Actor()
	if actor.Role == kernel.RoleTailor {
		return BillResponse{}, errs.NewForbiddenError(actor.ID.String(), "view bills")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT b.id, b.order_id, b.amount, b.amount_paid, b.payments,
		       b.created_at, b.version, o.customer_id
		FROM bills b
		JOIN orders o ON o.id = b.order_id
		WHERE b.order_id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return BillResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return BillResponse{}, err
		}
		return BillResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	var (
		resp                     BillResponse
		billID, orderID, ownerID uuid.UUID
		paymentsJSON             []byte
	)

	if err = rows.Scan(
		&billID,
		&orderID,
		&resp.Amount,
		&resp.AmountPaid,
		&paymentsJSON,
		&resp.CreatedAt,
		&resp.Version,
		&ownerID,
	); err != nil {
		return BillResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return BillResponse{}, err
	}
	if err = requireBillAccess(customerID, actor); err != nil {
		return BillResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(billID[:]); err != nil {
		return BillResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return BillResponse{}, err
	}

	if len(paymentsJSON) > 0 {
		if err = json.Unmarshal(paymentsJSON, &resp.Payments); err != nil {
			return BillResponse{}, err
		}
	}
	if resp.Payments == nil {
		resp.Payments = []PaymentResponse{}
	}

	resp.Outstanding = resp.Amount - resp.AmountPaid
	resp.Status = bill.DeriveStatus(resp.Amount, resp.AmountPaid).String()

	return resp, nil
}

func requireBillAccess(customerID kernel.UUID, actor ports.Actor) error {
	if actor.Role.IsStaffOrAdmin() || customerID.IsEqual(actor.ID) {
		return nil
	}
	return errs.NewForbiddenError(actor.ID.String(), "view this bill")
}
