package queries

import (
	"fmt"

	"dispatchops/internal/pkg/errs"
)

// requireSameCurrency guards aggregations over money amounts: summing
// across currencies would produce a number that means nothing.
func requireSameCurrency(expected, got string) error {
	if expected != got {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("ledger mixes %s and %s", expected, got))
	}
	return nil
}
