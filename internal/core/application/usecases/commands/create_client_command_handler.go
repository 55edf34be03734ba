package commands

import (
	"context"
	"fmt"
	"time"

	"dispatchops/internal/core/domain/model/audit"
	"dispatchops/internal/core/domain/model/client"
)

// CreateClientCommandHandler handles adding clients to the roster.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client registration command.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	aggregate, err := client.NewClient(cmd.ClientID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Category())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ClientRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		audit.EntityClient,
		cmd.ClientID().String(),
		audit.ActionCreate,
		now,
		cmd.Actor(),
		fmt.Sprintf("%s client %s registered", cmd.Category(), cmd.Name()),
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
