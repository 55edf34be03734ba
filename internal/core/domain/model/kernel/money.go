package kernel

import (
	"fmt"

	"dispatchops/internal/pkg/errs"
)

// currencyCodeLength is the length of an ISO 4217 alphabetic currency code.
const currencyCodeLength = 3

// Money is a value object holding a monetary amount in minor units
// (cents) together with its ISO 4217 currency code.
//
// The zero value is invalid and must be constructed through NewMoney.
// Money is immutable; arithmetic returns new instances.
//
// Example:
//
//	price, err := kernel.NewMoney(12500, "USD") // $125.00
//	if err != nil {
//	    // handle validation error
//	}
type Money struct { //nolint:recvcheck //using for validation
	amount   int64
	currency string
}

// NewMoney creates a Money value. The amount must be positive (orders are
// never booked for free) and the currency must be a three-letter uppercase
// code.
func NewMoney(amount int64, currency string) (Money, error) {
	money := Money{}

	if err := money.setAmount(amount); err != nil {
		return Money{}, err
	}
	if err := money.setCurrency(currency); err != nil {
		return Money{}, err
	}

	return money, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two Money values. Both operands must share the
// same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("cannot add %s to %s", other.currency, m.currency))
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String renders the amount with two decimal places, e.g. "125.00 USD".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.amount/100, m.amount%100, m.currency)
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	if m.currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if m.amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", m.amount))
	}
	return nil
}

func (m *Money) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(currency) != currencyCodeLength {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not an uppercase currency code", currency))
		}
	}
	m.currency = currency
	return nil
}
