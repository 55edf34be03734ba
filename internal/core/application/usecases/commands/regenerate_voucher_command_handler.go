package commands

import (
	"context"
	"time"

	"dispatchops/internal/core/domain/model/audit"
	"dispatchops/internal/core/domain/model/order"
)

// RegenerateVoucherCommandHandler handles voucher token replacement.
// Issues a fresh token, stores the superseded token's hash on the
// revocation list, and records the audit entry, all in one transaction.
type RegenerateVoucherCommandHandler struct {
	uowFactory VoucherUoWFactory
	tokens     TokenSource
}

// NewRegenerateVoucherCommandHandler creates a handler for voucher replacement.
func NewRegenerateVoucherCommandHandler(uowFactory VoucherUoWFactory, tokens TokenSource) RegenerateVoucherCommandHandler {
	return RegenerateVoucherCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
	}
}

// Handle processes the voucher replacement command.
// The revocation list keeps only the SHA-256 hash of the old token.
func (h *RegenerateVoucherCommandHandler) Handle(ctx context.Context, cmd RegenerateVoucherCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	_, oldToken, err := aggregate.RegenerateVoucher(token, now)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.RevokedTokenRepository().Add(ctx, order.HashToken(oldToken)); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		audit.EntityVoucher,
		cmd.OrderID().String(),
		audit.ActionRegenerateToken,
		now,
		cmd.Actor(),
		"voucher token replaced, previous token revoked",
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
