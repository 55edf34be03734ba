package commands

import (
	"context"
	"fmt"
	"time"

	"dispatchops/internal/core/domain/model/audit"
)

// AssignExecutorCommandHandler handles putting executors on orders.
// Verifies the executor exists on the roster before the order references it.
type AssignExecutorCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignExecutorCommandHandler creates a handler for executor assignment.
func NewAssignExecutorCommandHandler(uowFactory AssignmentUoWFactory) AssignExecutorCommandHandler {
	return AssignExecutorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Fails when the executor is unknown or the order is already in a terminal
// status; reassignment of a live order is allowed.
func (h *AssignExecutorCommandHandler) Handle(ctx context.Context, cmd AssignExecutorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ExecutorRepository().Get(ctx, cmd.ExecutorID()); err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignExecutor(cmd.ExecutorID(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		audit.EntityOrder,
		cmd.OrderID().String(),
		audit.ActionUpdate,
		now,
		cmd.Actor(),
		fmt.Sprintf("executor %s assigned", cmd.ExecutorID()),
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
