package commands_test

import (
	"errors"
	"testing"

	"dispatchops/internal/core/application/usecases/commands"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
	"dispatchops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, clientID kernel.ClientID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewOrderID(),
		clientID,
		fixtureMoney(t),
		fixtureTime,
		fixtureRoute(t),
		fixtureActor(t),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := fixtureClient(t)
	cmd := newCreateOrderCommand(t, owner.ID())

	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)

	var booked *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { booked = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Update", ctx, owner).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	tokens := new(MockTokenSource)
	tokens.On("NewToken").Return("VOUCHTOKENAAAAAAAAAA", nil).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, tokens)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, booked)
	assert.Equal(t, order.New, booked.Status())
	require.NotNil(t, booked.Voucher())
	assert.Equal(t, "VOUCHTOKENAAAAAAAAAA", booked.Voucher().Token())
	assert.True(t, booked.Voucher().IsActive())
	assert.Equal(t, 1, owner.TotalOrders())
	orderRepo.AssertExpectations(t)
	clientRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateOrderCommand

	factory := new(MockBookingUoWFactory)
	tokens := new(MockTokenSource)
	handler := commands.NewCreateOrderCommandHandler(factory, tokens)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_TokenError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, kernel.NewClientID())

	factory := new(MockBookingUoWFactory)
	tokens := new(MockTokenSource)
	tokens.On("NewToken").Return("", errors.New("entropy exhausted")).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, tokens)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "entropy exhausted")
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_UnknownClient(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewClientID()
	cmd := newCreateOrderCommand(t, clientID)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", ctx, clientID).
			Return(nil, errs.NewObjectNotFoundError("clientID", clientID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	tokens := new(MockTokenSource)
	tokens.On("NewToken").Return("VOUCHTOKENAAAAAAAAAA", nil).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, tokens)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
