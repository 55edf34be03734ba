package commands_test

import (
	"testing"

	"dispatchops/internal/core/application/usecases/commands"
	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewClientID()
	cmd, err := commands.NewCreateClientCommand(
		clientID,
		"Grand Horizon Hotels",
		"bookings@grandhorizon.example",
		"+1-212-555-0134",
		client.Business,
		fixtureActor(t),
	)
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)

	var registered *client.Client
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Add", ctx, mock.AnythingOfType("*client.Client")).
			Run(func(args mock.Arguments) { registered = args.Get(1).(*client.Client) }).
			Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateClientCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, registered)
	assert.True(t, registered.ID().IsEqual(clientID))
	assert.Equal(t, client.Business, registered.Category())
	assert.Zero(t, registered.TotalOrders())
	clientRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_InvalidEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateClientCommand(
		kernel.NewClientID(),
		"Grand Horizon Hotels",
		"not-an-email",
		"+1-212-555-0134",
		client.Business,
		fixtureActor(t),
	)
	require.NoError(t, err)

	factory := new(MockClientUoWFactory)
	handler := commands.NewCreateClientCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateClientCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateClientCommand

	factory := new(MockClientUoWFactory)
	handler := commands.NewCreateClientCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateClientCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
