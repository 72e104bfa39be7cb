package commands_test

import (
	"testing"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	tailorID := kernel.NewUUID()
	testOrder := acceptedTestOrder(t, customerID, tailorID)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), "customer changed mind", staffActor())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	dispatcher := new(MockDispatcher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())

	dispatched := dispatcher.Calls[0].Arguments[1].(*notification.Notification)
	assert.True(t, dispatched.IsFor(customerID, kernel.RoleCustomer))
	assert.True(t, dispatched.IsFor(tailorID, kernel.RoleTailor))
	assert.True(t, dispatched.IsFor(kernel.NewUUID(), kernel.RoleStaff))
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelledIsNoOp(t *testing.T) {
	ctx := t.Context()
	testOrder := placedTestOrder(t, kernel.NewUUID())
	_, err := testOrder.Cancel(kernel.NewUUID(), "first cancellation", testNow)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), "second cancellation", adminActor())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	dispatcher := new(MockDispatcher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err, "cancelling an already cancelled order must succeed")
	orderRepo.AssertNotCalled(t, "Update")
	dispatcher.AssertNotCalled(t, "Dispatch")
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrder(t *testing.T) {
	ctx := t.Context()
	tailorID := kernel.NewUUID()
	testOrder := trialTestOrder(t, kernel.NewUUID(), tailorID)
	require.NoError(t, testOrder.AdvanceTo(order.Ready))
	require.NoError(t, testOrder.AdvanceTo(order.Delivered))

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), "too late", staffActor())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, new(MockDispatcher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestCancelOrderCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()

	for _, actor := range []ports.Actor{customerActor(), tailorActor()} {
		cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "reason", actor)
		require.NoError(t, err)

		factory := new(MockOrderUoWFactory)
		handler := commands.NewCancelOrderCommandHandler(factory, new(MockDispatcher))
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden, "role %s", actor.Role)
		factory.AssertNotCalled(t, "Create")
	}
}
