package commands

import (
	"context"
	"fmt"
	"time"

	"dispatchops/internal/core/domain/model/audit"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// Loads the order, delegates the transition to the aggregate, and records
// the change in the audit trail within the same transaction.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// A disallowed transition surfaces the aggregate's *order.InvalidTransitionError
// and leaves the order untouched.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Target(), cmd.Actor(), cmd.Reason(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		audit.EntityOrder,
		cmd.OrderID().String(),
		audit.ActionStatusChange,
		now,
		cmd.Actor(),
		fmt.Sprintf("%s -> %s", previous, cmd.Target()),
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
