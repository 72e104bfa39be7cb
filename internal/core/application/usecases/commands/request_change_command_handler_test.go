package commands_test

import (
	"testing"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestChangeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := tailorActor()
	testOrder := placedTestOrder(t, kernel.NewUUID())
	require.NoError(t, testOrder.AssignTailor(actor.ID, false))

	cmd, err := commands.NewRequestChangeCommand(testOrder.ID(), "fabric is out of stock", actor)
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

	handler := commands.NewRequestChangeCommandHandler(factory, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ChangeRequested, testOrder.Assignment())
	assert.Equal(t, order.OrderPlaced, testOrder.Status(), "lifecycle status must be unaffected")

	dispatched := dispatcher.Calls[0].Arguments[1].(*notification.Notification)
	assert.Contains(t, dispatched.Message(), "fabric is out of stock")
	assert.True(t, dispatched.IsFor(kernel.NewUUID(), kernel.RoleAdmin))
}

func TestRequestChangeCommandHandler_Handle_RequiresReason(t *testing.T) {
	_, err := commands.NewRequestChangeCommand(kernel.NewUUID(), "", tailorActor())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRequestChangeCommandHandler_Handle_NonTailorRole(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestChangeCommand(kernel.NewUUID(), "reason", adminActor())
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewRequestChangeCommandHandler(factory, new(MockDispatcher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestRequestChangeCommandHandler_Handle_AfterAcceptance(t *testing.T) {
	ctx := t.Context()
	actor := tailorActor()
	testOrder := acceptedTestOrder(t, kernel.NewUUID(), actor.ID)

	cmd, err := commands.NewRequestChangeCommand(testOrder.ID(), "cannot do it after all", actor)
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

	handler := commands.NewRequestChangeCommandHandler(factory, new(MockDispatcher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
}
