package commands_test

import (
	"context"
	"testing"
	"time"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/domain/model/bill"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTailor(ctx context.Context, tailorID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, tailorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockBillRepository struct{ mock.Mock }

func (m *MockBillRepository) Add(ctx context.Context, b *bill.Bill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillRepository) Update(ctx context.Context, b *bill.Bill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*bill.Bill, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BillRepository() ports.BillRepository {
	args := m.Called()
	return args.Get(0).(ports.BillRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockBillUoW struct{ mock.Mock }

func (m *MockBillUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBillUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBillUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBillUoW) BillRepository() ports.BillRepository {
	args := m.Called()
	return args.Get(0).(ports.BillRepository)
}

type MockBillUoWFactory struct{ mock.Mock }

func (m *MockBillUoWFactory) Create() commands.BillUoW {
	args := m.Called()
	return args.Get(0).(commands.BillUoW)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetUnreadFor(ctx context.Context, userID kernel.UUID, role kernel.Role) ([]*notification.Notification, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Dispatch(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockDispatcher) RetryFailed(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockTailorDirectory struct{ mock.Mock }

func (m *MockTailorDirectory) Exists(ctx context.Context, tailorID kernel.UUID) (bool, error) {
	args := m.Called(ctx, tailorID)
	return args.Bool(0), args.Error(1)
}

func staffActor() ports.Actor {
	return ports.Actor{ID: kernel.NewUUID(), Role: kernel.RoleStaff}
}

func adminActor() ports.Actor {
	return ports.Actor{ID: kernel.NewUUID(), Role: kernel.RoleAdmin}
}

func tailorActor() ports.Actor {
	return ports.Actor{ID: kernel.NewUUID(), Role: kernel.RoleTailor}
}

func customerActor() ports.Actor {
	return ports.Actor{ID: kernel.NewUUID(), Role: kernel.RoleCustomer}
}

// placedTestOrder returns a freshly placed order with no tailor assigned.
func placedTestOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	fabric, err := order.NewFabric(order.FabricFromShop, "navy wool")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, "suit",
		order.Measurements{"chest": 96, "waist": 82},
		fabric, testNow.AddDate(0, 0, 7), 450, testNow,
	)
	require.NoError(t, err)
	return o
}

// acceptedTestOrder returns an order assigned to and accepted by the tailor.
func acceptedTestOrder(t *testing.T, customerID, tailorID kernel.UUID) *order.Order {
	t.Helper()

	o := placedTestOrder(t, customerID)
	require.NoError(t, o.AssignTailor(tailorID, false))
	require.NoError(t, o.Accept(tailorID))
	return o
}

// trialTestOrder returns an accepted order advanced to Trial.
func trialTestOrder(t *testing.T, customerID, tailorID kernel.UUID) *order.Order {
	t.Helper()

	o := acceptedTestOrder(t, customerID, tailorID)
	require.NoError(t, o.StartWork(tailorID, testNow))
	require.NoError(t, o.AdvanceTo(order.Stitching))
	require.NoError(t, o.AdvanceTo(order.Trial))
	return o
}
