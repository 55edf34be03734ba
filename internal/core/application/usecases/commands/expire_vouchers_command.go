package commands

import (
	"errors"
	"time"

	"dispatchops/internal/pkg/errs"
	"dispatchops/internal/pkg/guard"
)

var ErrExpireVouchersCommandIsNotConstructed = errors.New(
	"ExpireVouchersCommand must be created via NewExpireVouchersCommand constructor",
)

// ExpireVouchersCommand represents a sweep deactivating vouchers whose
// validity window has elapsed. The reference time is carried explicitly so
// the scheduled job and tests share one code path.
type ExpireVouchersCommand struct { //nolint:recvcheck //using for validation
	at time.Time

	guard guard.ConstructorGuard
}

// NewExpireVouchersCommand creates a command to sweep expired vouchers as
// of the given time.
func NewExpireVouchersCommand(at time.Time) (ExpireVouchersCommand, error) {
	sweepCommand := ExpireVouchersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sweepCommand.setAt(at); err != nil {
		return ExpireVouchersCommand{}, err
	}

	return sweepCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireVouchersCommand) Validate() error {
	return c.guard.Validate(ErrExpireVouchersCommandIsNotConstructed)
}

// At returns the reference time vouchers are checked against.
func (c ExpireVouchersCommand) At() time.Time {
	return c.at
}

func (c *ExpireVouchersCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}

	c.at = at
	return nil
}
