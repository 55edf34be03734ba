package commands

import (
	"context"

	"dispatchops/internal/core/domain/model/audit"
	"dispatchops/internal/core/domain/model/kernel"
)

// systemActor marks mutations made by scheduled jobs rather than people.
const systemActor = "SYSTEM"

// ExpireVouchersCommandHandler sweeps orders whose vouchers have outlived
// their validity window and deactivates them. One audit entry is written
// per deactivated voucher.
type ExpireVouchersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireVouchersCommandHandler creates a handler for the expiry sweep.
func NewExpireVouchersCommandHandler(uowFactory OrderUoWFactory) ExpireVouchersCommandHandler {
	return ExpireVouchersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep. Returns how many vouchers were
// deactivated. Orders whose voucher is already inactive or still within
// its window are left untouched.
func (h *ExpireVouchersCommandHandler) Handle(ctx context.Context, cmd ExpireVouchersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	actor, err := kernel.ActorIDFromString(systemActor)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidates, err := uow.OrderRepository().GetAllWithActiveVouchers(ctx)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, aggregate := range candidates {
		if !aggregate.DeactivateExpiredVoucher(cmd.At()) {
			continue
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}

		entry, entryErr := audit.NewEntry(
			audit.EntityVoucher,
			aggregate.ID().String(),
			audit.ActionUpdate,
			cmd.At(),
			actor,
			"voucher deactivated after validity window elapsed",
		)
		if entryErr != nil {
			return 0, entryErr
		}
		if err = uow.AuditRepository().Append(ctx, entry); err != nil {
			return 0, err
		}

		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
