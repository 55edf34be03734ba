package queries

import (
	"errors"
	"time"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/errs"
	"dispatchops/internal/pkg/guard"
)

var ErrCheckVoucherQueryIsNotConstructed = errors.New(
	"CheckVoucherQuery must be created via NewCheckVoucherQuery constructor",
)

// VoucherVerdict is the outcome of presenting a voucher token.
type VoucherVerdict string

const (
	// VoucherValid means the token matches the order's live voucher.
	VoucherValid VoucherVerdict = "VALID"

	// VoucherMismatch means the token was never issued for this order.
	VoucherMismatch VoucherVerdict = "MISMATCH"

	// VoucherRevoked means the token was superseded by a regeneration.
	VoucherRevoked VoucherVerdict = "REVOKED"

	// VoucherExpired means the token matches but its window elapsed.
	VoucherExpired VoucherVerdict = "EXPIRED"

	// VoucherInactive means the token matches a deactivated voucher.
	VoucherInactive VoucherVerdict = "INACTIVE"
)

// CheckVoucherQuery verifies a presented voucher token against an order.
// Carried out at read time: checking never mutates the voucher.
type CheckVoucherQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	token   string
	at      time.Time

	guard guard.ConstructorGuard
}

// NewCheckVoucherQuery creates a voucher check for the given order, the
// presented token, and the time of presentation.
func NewCheckVoucherQuery(orderID kernel.OrderID, token string, at time.Time) (CheckVoucherQuery, error) {
	if err := orderID.Validate(); err != nil {
		return CheckVoucherQuery{}, err
	}
	if token == "" {
		return CheckVoucherQuery{}, errs.NewValueIsRequiredError("token")
	}
	if at.IsZero() {
		return CheckVoucherQuery{}, errs.NewValueIsRequiredError("at")
	}

	return CheckVoucherQuery{
		orderID: orderID,
		token:   token,
		at:      at,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckVoucherQuery) Validate() error {
	return q.guard.Validate(ErrCheckVoucherQueryIsNotConstructed)
}

// OrderID returns the order the token is presented for.
func (q CheckVoucherQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// Token returns the presented token.
func (q CheckVoucherQuery) Token() string {
	return q.token
}

// At returns the time of presentation.
func (q CheckVoucherQuery) At() time.Time {
	return q.at
}
