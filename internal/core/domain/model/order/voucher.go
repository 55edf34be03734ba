package order

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"dispatchops/internal/pkg/errs"
)

// VoucherValidity is the window during which a freshly issued voucher token
// grants passengers access to order details.
const VoucherValidity = 48 * time.Hour

// ErrNoVoucher is returned when a voucher operation targets an order that
// has no voucher attached.
var ErrNoVoucher = errors.New("order has no voucher")

// Voucher is a bearer credential owned by exactly one order. The token is
// an opaque string handed to the passenger; whoever presents it can view
// the order without authenticating.
//
// Voucher is an immutable value object: regeneration and deactivation
// produce new instances, they never mutate an existing one.
type Voucher struct {
	token       string
	isActive    bool
	generatedAt time.Time
	expiresAt   time.Time
}

// NewVoucher issues an active voucher with the given token. The expiry is
// derived from the issue time plus VoucherValidity.
func NewVoucher(token string, issuedAt time.Time) (Voucher, error) {
	if token == "" {
		return Voucher{}, errs.NewValueIsRequiredError("token")
	}
	if issuedAt.IsZero() {
		return Voucher{}, errs.NewValueIsRequiredError("issuedAt")
	}

	return Voucher{
		token:       token,
		isActive:    true,
		generatedAt: issuedAt,
		expiresAt:   issuedAt.Add(VoucherValidity),
	}, nil
}

// RestoreVoucher reconstructs a voucher from persistent storage with all
// fields as stored, including already-expired or deactivated ones.
func RestoreVoucher(token string, isActive bool, generatedAt, expiresAt time.Time) (Voucher, error) {
	if token == "" {
		return Voucher{}, errs.NewValueIsRequiredError("token")
	}
	if generatedAt.IsZero() || expiresAt.IsZero() {
		return Voucher{}, errs.NewValueIsRequiredError("voucher timestamps")
	}
	if !expiresAt.After(generatedAt) {
		return Voucher{}, errs.NewValueIsInvalidErrorWithCause("expiresAt",
			fmt.Errorf("expiry %s is not after generation %s", expiresAt, generatedAt))
	}

	return Voucher{
		token:       token,
		isActive:    isActive,
		generatedAt: generatedAt,
		expiresAt:   expiresAt,
	}, nil
}

// Token returns the opaque bearer token.
func (v Voucher) Token() string {
	return v.token
}

// IsActive reports whether the voucher still grants access.
func (v Voucher) IsActive() bool {
	return v.isActive
}

// GeneratedAt returns the issue time of the current token.
func (v Voucher) GeneratedAt() time.Time {
	return v.generatedAt
}

// ExpiresAt returns the time after which the token stops granting access.
func (v Voucher) ExpiresAt() time.Time {
	return v.expiresAt
}

// IsExpired reports whether the voucher's validity window has elapsed at
// the given instant.
func (v Voucher) IsExpired(at time.Time) bool {
	return at.After(v.expiresAt)
}

// deactivated returns a copy of the voucher with the active flag cleared.
func (v Voucher) deactivated() Voucher {
	v.isActive = false
	return v
}

// HashToken produces the hex SHA-256 digest of a voucher token. Superseded
// tokens are retained only in this hashed form, enough to reject them on
// presentation without storing the plain credential.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
