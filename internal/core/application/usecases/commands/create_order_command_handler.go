package commands

import (
	"context"
	"fmt"
	"time"

	"dispatchops/internal/core/domain/model/audit"
	"dispatchops/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for booking orders.
// Creates the order in NEW status, issues its pickup voucher, bumps the
// owning client's lifetime order counter, and records the audit entry, all
// in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, tokens)
//	cmd, _ := NewCreateOrderCommand(orderID, clientID, price, date, route, actor)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory BookingUoWFactory
	tokens     TokenSource
}

// NewCreateOrderCommandHandler creates a handler for order booking operations.
// Requires a BookingUoWFactory for transactional persistence and a
// TokenSource for voucher issuance.
func NewCreateOrderCommandHandler(uowFactory BookingUoWFactory, tokens TokenSource) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
	}
}

// Handle processes the order booking command.
// The owning client must already exist; a missing client fails the whole
// booking and nothing is persisted.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	token, err := h.tokens.NewToken()
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

	owner, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.ClientID(), cmd.Price(), cmd.ScheduledAt(), cmd.Route(), now)
	if err != nil {
		return err
	}

	voucher, err := order.NewVoucher(token, now)
	if err != nil {
		return err
	}
	if err = aggregate.AttachVoucher(voucher, now); err != nil {
		return err
	}

	owner.RecordOrder()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.ClientRepository().Update(ctx, owner); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		audit.EntityOrder,
		cmd.OrderID().String(),
		audit.ActionCreate,
		now,
		cmd.Actor(),
		fmt.Sprintf("booked for %s on %s, voucher issued", cmd.ClientID(), cmd.ScheduledAt().Format("2006-01-02")),
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
