package queries

import (
	"context"

	"dispatchops/internal/core/domain/model/order"
)

// CheckVoucherQueryHandler verifies presented voucher tokens. A token that
// does not match the live voucher is checked against the revocation list
// to distinguish a superseded voucher from one that never existed.
type CheckVoucherQueryHandler struct {
	orders      OrderReader
	revocations RevocationReader
}

// NewCheckVoucherQueryHandler creates a handler for voucher checks.
func NewCheckVoucherQueryHandler(orders OrderReader, revocations RevocationReader) CheckVoucherQueryHandler {
	return CheckVoucherQueryHandler{
		orders:      orders,
		revocations: revocations,
	}
}

// Handle executes the voucher check.
// Returns order.ErrNoVoucher when the order has never been issued one.
func (h CheckVoucherQueryHandler) Handle(
	ctx context.Context,
	query CheckVoucherQuery,
) (VoucherVerdict, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	aggregate, err := h.orders.OrderByID(ctx, query.OrderID())
	if err != nil {
		return "", err
	}

	voucher := aggregate.Voucher()
	if voucher == nil {
		return "", order.ErrNoVoucher
	}

	if voucher.Token() != query.Token() {
		revoked, revErr := h.revocations.IsRevoked(ctx, order.HashToken(query.Token()))
		if revErr != nil {
			return "", revErr
		}
		if revoked {
			return VoucherRevoked, nil
		}
		return VoucherMismatch, nil
	}

	if !voucher.IsActive() {
		return VoucherInactive, nil
	}
	if voucher.IsExpired(query.At()) {
		return VoucherExpired, nil
	}
	return VoucherValid, nil
}
