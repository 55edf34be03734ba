package commands

import (
	"context"
	"fmt"
	"time"

	"dispatchops/internal/core/domain/model/audit"
	"dispatchops/internal/core/domain/model/executor"
)

// CreateExecutorCommandHandler handles adding executors to the roster.
type CreateExecutorCommandHandler struct {
	uowFactory ExecutorUoWFactory
}

// NewCreateExecutorCommandHandler creates a handler for executor registration.
func NewCreateExecutorCommandHandler(uowFactory ExecutorUoWFactory) CreateExecutorCommandHandler {
	return CreateExecutorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the executor registration command.
func (h *CreateExecutorCommandHandler) Handle(ctx context.Context, cmd CreateExecutorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	aggregate, err := executor.NewExecutor(cmd.ExecutorID(), cmd.Name(), cmd.Phone(), cmd.Vehicle())
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

	if err = uow.ExecutorRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		audit.EntityExecutor,
		cmd.ExecutorID().String(),
		audit.ActionCreate,
		now,
		cmd.Actor(),
		fmt.Sprintf("executor %s registered with vehicle %s", cmd.Name(), cmd.Vehicle()),
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
