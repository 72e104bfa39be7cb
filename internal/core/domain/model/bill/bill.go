package bill

import (
	"errors"
	"fmt"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

var (
	// ErrBillIsNotConstructed is returned when a Bill instance was not created
	// through NewBill or RestoreBill. This ensures all bills are validated.
	ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill or RestoreBill")
)

// Payment is a single settled amount on a bill. The reference field carries
// the external receipt or transaction identifier and may be empty for cash.
type Payment struct {
	Amount    float64
	Method    string
	Reference string
	At        time.Time
}

// Bill represents the invoice raised for an order when it becomes ready for
// pickup. Exactly one bill exists per order and it is never deleted, not
// even when the order is later cancelled.
//
// Bill maintains these invariants:
//   - the billed amount is fixed at creation and positive
//   - payments are append-only and individually positive
//   - the paid total never exceeds the billed amount
//   - status is always derived from the amounts, never set directly
type Bill struct {
	id      kernel.UUID
	orderID kernel.UUID

	amount     float64
	amountPaid float64
	payments   []Payment

	createdAt time.Time

	version int

	isConstructed bool
}

// NewBill creates an unpaid Bill for an order. This is the only way to
// create a valid new Bill.
func NewBill(id kernel.UUID, orderID kernel.UUID, amount float64, createdAt time.Time) (*Bill, error) {
	b := &Bill{
		createdAt:     createdAt,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBillParams carries the persisted state of a bill back into the
// domain. Used only by repository implementations.
type RestoreBillParams struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Amount     float64
	AmountPaid float64
	Payments   []Payment
	CreatedAt  time.Time
	Version    int
}

// RestoreBill reconstructs a Bill from persistence.
func RestoreBill(p RestoreBillParams) (*Bill, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.OrderID.Validate(),
	); err != nil {
		return nil, err
	}

	if p.Amount <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%v is not greater than 0", p.Amount))
	}
	if p.AmountPaid < 0 || p.AmountPaid > p.Amount {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amountPaid", fmt.Errorf("%v is outside [0, %v]", p.AmountPaid, p.Amount))
	}
	if p.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not a valid version", p.Version))
	}

	return &Bill{
		id:            p.ID,
		orderID:       p.OrderID,
		amount:        p.Amount,
		amountPaid:    p.AmountPaid,
		payments:      p.Payments,
		createdAt:     p.CreatedAt,
		version:       p.Version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Bill instance was properly constructed.
func (b *Bill) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBillIsNotConstructed
	}

	return nil
}

// IsEqual compares two bills by their unique identifiers.
func (b *Bill) IsEqual(other *Bill) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bill's unique identifier.
func (b *Bill) ID() kernel.UUID {
	return b.id
}

// Order returns the billed order's identifier.
func (b *Bill) Order() kernel.UUID {
	return b.orderID
}

// Amount returns the total billed amount.
func (b *Bill) Amount() float64 {
	return b.amount
}

// AmountPaid returns the sum of recorded payments.
func (b *Bill) AmountPaid() float64 {
	return b.amountPaid
}

// Outstanding returns what remains to be paid.
func (b *Bill) Outstanding() float64 {
	return b.amount - b.amountPaid
}

// Status returns the payment status derived from the amounts.
func (b *Bill) Status() Status {
	return DeriveStatus(b.amount, b.amountPaid)
}

// Payments returns the recorded payments in insertion order.
func (b *Bill) Payments() []Payment {
	payments := make([]Payment, len(b.payments))
	copy(payments, b.payments)
	return payments
}

// CreatedAt returns when the bill was raised.
func (b *Bill) CreatedAt() time.Time {
	return b.createdAt
}

// Version returns the optimistic-concurrency version loaded from the store.
func (b *Bill) Version() int {
	return b.version
}

// RecordPayment appends a payment to the bill.
//
// The amount must be positive and must not take the paid total over the
// billed amount. The method is required; the reference may be empty.
func (b *Bill) RecordPayment(amount float64, method, reference string, at time.Time) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%v is not greater than 0", amount))
	}
	if method == "" {
		return errs.NewValueIsRequiredError("method")
	}
	if b.amountPaid+amount > b.amount {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("payment of %v exceeds the outstanding %v", amount, b.Outstanding()))
	}

	b.payments = append(b.payments, Payment{
		Amount:    amount,
		Method:    method,
		Reference: reference,
		At:        at,
	})
	b.amountPaid += amount
	return nil
}

func (b *Bill) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bill) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	b.orderID = orderID
	return nil
}

func (b *Bill) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%v is not greater than 0", amount))
	}
	b.amount = amount
	return nil
}
