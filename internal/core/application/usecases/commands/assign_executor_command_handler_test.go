package commands_test

import (
	"testing"

	"dispatchops/internal/core/application/usecases/commands"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
	"dispatchops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignExecutorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t)
	driver := fixtureExecutor(t)
	cmd, err := commands.NewAssignExecutorCommand(aggregate.ID(), driver.ID(), fixtureActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	executorRepo := new(MockExecutorRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExecutorRepository").Return(executorRepo).Once(),
		executorRepo.On("Get", ctx, driver.ID()).Return(driver, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignExecutorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, aggregate.ExecutorID())
	assert.True(t, aggregate.ExecutorID().IsEqual(driver.ID()))
	orderRepo.AssertExpectations(t)
	executorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignExecutorCommandHandler_Handle_UnknownExecutor(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t)
	executorID := kernel.NewExecutorID()
	cmd, err := commands.NewAssignExecutorCommand(aggregate.ID(), executorID, fixtureActor(t))
	require.NoError(t, err)

	executorRepo := new(MockExecutorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExecutorRepository").Return(executorRepo).Once(),
		executorRepo.On("Get", ctx, executorID).
			Return(nil, errs.NewObjectNotFoundError("executorID", executorID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignExecutorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignExecutorCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t)
	actor := fixtureActor(t)
	for _, status := range []order.Status{order.Confirmed, order.Cancelled} {
		require.NoError(t, aggregate.ChangeStatus(status, actor, "", fixtureTime))
	}
	driver := fixtureExecutor(t)
	cmd, err := commands.NewAssignExecutorCommand(aggregate.ID(), driver.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	executorRepo := new(MockExecutorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExecutorRepository").Return(executorRepo).Once(),
		executorRepo.On("Get", ctx, driver.ID()).Return(driver, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignExecutorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, aggregate.ExecutorID())
	uow.AssertNotCalled(t, "Commit", ctx)
}
