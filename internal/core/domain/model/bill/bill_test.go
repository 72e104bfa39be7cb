package bill_test

import (
	"testing"
	"time"

	"tailorshop/internal/core/domain/model/bill"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestBill(t *testing.T, amount float64) *bill.Bill {
	t.Helper()
	b, err := bill.NewBill(kernel.NewUUID(), kernel.NewUUID(), amount, testNow)
	require.NoError(t, err)
	return b
}

func TestNewBill(t *testing.T) {
	t.Run("should create an unpaid bill", func(t *testing.T) {
		b := newTestBill(t, 450)

		assert.Equal(t, bill.Unpaid, b.Status())
		assert.Equal(t, 450.0, b.Amount())
		assert.Equal(t, 0.0, b.AmountPaid())
		assert.Equal(t, 450.0, b.Outstanding())
		assert.Empty(t, b.Payments())
		assert.Equal(t, 1, b.Version())
		require.NoError(t, b.Validate())
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		_, err := bill.NewBill(kernel.NewUUID(), kernel.NewUUID(), 0, testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed order id", func(t *testing.T) {
		_, err := bill.NewBill(kernel.NewUUID(), kernel.UUID{}, 450, testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestBill_Validate(t *testing.T) {
	t.Run("should reject zero-value bill", func(t *testing.T) {
		var b bill.Bill
		assert.Equal(t, bill.ErrBillIsNotConstructed, b.Validate())
	})

	t.Run("should reject nil bill", func(t *testing.T) {
		var b *bill.Bill
		assert.Equal(t, bill.ErrBillIsNotConstructed, b.Validate())
	})
}

func TestBill_RecordPayment(t *testing.T) {
	t.Run("should move to Partial on a partial payment", func(t *testing.T) {
		b := newTestBill(t, 450)

		require.NoError(t, b.RecordPayment(100, "cash", "", testNow))

		assert.Equal(t, bill.Partial, b.Status())
		assert.Equal(t, 100.0, b.AmountPaid())
		assert.Equal(t, 350.0, b.Outstanding())
		require.Len(t, b.Payments(), 1)
		assert.Equal(t, "cash", b.Payments()[0].Method)
	})

	t.Run("should move to Paid when settled in full", func(t *testing.T) {
		b := newTestBill(t, 450)

		require.NoError(t, b.RecordPayment(200, "cash", "", testNow))
		require.NoError(t, b.RecordPayment(250, "card", "txn-812", testNow.Add(time.Hour)))

		assert.Equal(t, bill.Paid, b.Status())
		assert.Equal(t, 0.0, b.Outstanding())
		require.Len(t, b.Payments(), 2)
		assert.Equal(t, "txn-812", b.Payments()[1].Reference)
	})

	t.Run("should reject non-positive payment", func(t *testing.T) {
		b := newTestBill(t, 450)

		err := b.RecordPayment(0, "cash", "", testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing method", func(t *testing.T) {
		b := newTestBill(t, 450)

		err := b.RecordPayment(100, "", "", testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject overpayment", func(t *testing.T) {
		b := newTestBill(t, 450)
		require.NoError(t, b.RecordPayment(400, "cash", "", testNow))

		err := b.RecordPayment(100, "cash", "", testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 400.0, b.AmountPaid(), "amount must be unchanged after rejection")
	})
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name       string
		amount     float64
		amountPaid float64
		expected   bill.Status
	}{
		{"nothing paid", 450, 0, bill.Unpaid},
		{"part paid", 450, 100, bill.Partial},
		{"almost paid", 450, 449.99, bill.Partial},
		{"fully paid", 450, 450, bill.Paid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bill.DeriveStatus(tc.amount, tc.amountPaid))
		})
	}
}

func TestRestoreBill(t *testing.T) {
	t.Run("should restore a persisted bill", func(t *testing.T) {
		b, err := bill.RestoreBill(bill.RestoreBillParams{
			ID:         kernel.NewUUID(),
			OrderID:    kernel.NewUUID(),
			Amount:     450,
			AmountPaid: 100,
			Payments:   []bill.Payment{{Amount: 100, Method: "cash", At: testNow}},
			CreatedAt:  testNow,
			Version:    3,
		})

		require.NoError(t, err)
		assert.Equal(t, bill.Partial, b.Status())
		assert.Equal(t, 3, b.Version())
	})

	t.Run("should reject paid amount above the billed amount", func(t *testing.T) {
		_, err := bill.RestoreBill(bill.RestoreBillParams{
			ID:         kernel.NewUUID(),
			OrderID:    kernel.NewUUID(),
			Amount:     450,
			AmountPaid: 500,
			CreatedAt:  testNow,
			Version:    1,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status name", func(t *testing.T) {
		for _, name := range []string{"Unpaid", "Partial", "Paid"} {
			status, err := bill.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "paid", "Settled"} {
			_, err := bill.StatusFromString(name)

			require.Error(t, err, "expected error for %q", name)
		}
	})
}
