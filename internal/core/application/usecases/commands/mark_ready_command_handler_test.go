package commands_test

import (
	"testing"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/domain/model/bill"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/services"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMarkReadyHandler(factory *MockUoWFactory, dispatcher *MockDispatcher) commands.MarkReadyCommandHandler {
	return commands.NewMarkReadyCommandHandler(factory, services.NewBillGenerator(), dispatcher)
}

func TestMarkReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := tailorActor()
	testOrder := trialTestOrder(t, kernel.NewUUID(), actor.ID)

	cmd, err := commands.NewMarkReadyCommand(testOrder.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	billRepo := new(MockBillRepository)
	uow := new(MockUoW)
	dispatcher := new(MockDispatcher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("BillRepository").Return(billRepo).Once(),
		billRepo.On("GetByOrder", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderId", testOrder.ID().String())).Once(),
		billRepo.On("Add", ctx, mock.AnythingOfType("*bill.Bill")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newMarkReadyHandler(factory, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Ready, testOrder.Status())

	addedBill := billRepo.Calls[1].Arguments[1].(*bill.Bill)
	assert.Equal(t, testOrder.TotalAmount(), addedBill.Amount())
}

func TestMarkReadyCommandHandler_Handle_AcceptanceResetByReassignment(t *testing.T) {
	ctx := t.Context()
	actor := tailorActor()
	testOrder := trialTestOrder(t, kernel.NewUUID(), actor.ID)
	require.NoError(t, testOrder.AssignTailor(actor.ID, true)) // resets acceptance

	cmd, err := commands.NewMarkReadyCommand(testOrder.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newMarkReadyHandler(factory, new(MockDispatcher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Trial, testOrder.Status())
}

func TestMarkReadyCommandHandler_Handle_CustomerForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkReadyCommand(kernel.NewUUID(), customerActor())
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	handler := newMarkReadyHandler(factory, new(MockDispatcher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
