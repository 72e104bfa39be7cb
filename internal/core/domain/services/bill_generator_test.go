package services_test

import (
	"testing"
	"time"

	"tailorshop/internal/core/domain/model/bill"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/services"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func readyTestOrder(t *testing.T) *order.Order {
	t.Helper()

	fabric, err := order.NewFabric(order.FabricFromCustomer, "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "suit",
		order.Measurements{"chest": 96}, fabric,
		testNow.AddDate(0, 0, 7), 450, testNow,
	)
	require.NoError(t, err)

	tailorID := kernel.NewUUID()
	require.NoError(t, o.AssignTailor(tailorID, false))
	require.NoError(t, o.Accept(tailorID))
	require.NoError(t, o.StartWork(tailorID, testNow))
	require.NoError(t, o.AdvanceTo(order.Stitching))
	require.NoError(t, o.AdvanceTo(order.Trial))
	require.NoError(t, o.AdvanceTo(order.Ready))
	return o
}

func TestBillGenerator_Generate(t *testing.T) {
	generator := services.NewBillGenerator()

	t.Run("should raise a bill for a ready order", func(t *testing.T) {
		o := readyTestOrder(t)

		b, created, err := generator.Generate(o, nil, testNow)

		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, b.Order().IsEqual(o.ID()))
		assert.Equal(t, o.TotalAmount(), b.Amount())
		assert.Equal(t, bill.Unpaid, b.Status())
	})

	t.Run("should return the existing bill unchanged", func(t *testing.T) {
		o := readyTestOrder(t)
		first, created, err := generator.Generate(o, nil, testNow)
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := generator.Generate(o, first, testNow.Add(time.Hour))

		require.NoError(t, err)
		assert.False(t, created)
		assert.True(t, second.IsEqual(first))
	})

	t.Run("should reject a non-billable order", func(t *testing.T) {
		fabric, err := order.NewFabric(order.FabricFromShop, "navy wool")
		require.NoError(t, err)
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "suit",
			order.Measurements{"chest": 96}, fabric,
			testNow.AddDate(0, 0, 7), 450, testNow,
		)
		require.NoError(t, err)

		_, _, err = generator.Generate(o, nil, testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject an unconstructed order", func(t *testing.T) {
		_, _, err := generator.Generate(&order.Order{}, nil, testNow)

		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
