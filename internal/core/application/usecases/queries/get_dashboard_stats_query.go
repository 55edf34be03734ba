package queries

import (
	"errors"
	"time"

	"dispatchops/internal/pkg/errs"
	"dispatchops/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the headline numbers for the dashboard.
// The reference time is carried explicitly so "completed today" means the
// same thing in handlers and tests.
type GetDashboardStatsQuery struct { //nolint:recvcheck //using for validation
	at time.Time

	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a stats query as of the given time.
func NewGetDashboardStatsQuery(at time.Time) (GetDashboardStatsQuery, error) {
	if at.IsZero() {
		return GetDashboardStatsQuery{}, errs.NewValueIsRequiredError("at")
	}

	return GetDashboardStatsQuery{
		at:    at,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// At returns the reference time of the query.
func (q GetDashboardStatsQuery) At() time.Time {
	return q.at
}

// GetDashboardStatsQueryResponse carries the dashboard headline numbers.
// GrossBookedValue sums the price of every order on the ledger regardless
// of status; recognized revenue lives in the revenue report instead.
type GetDashboardStatsQueryResponse struct {
	TotalOrders      int
	ActiveOrders     int
	CompletedToday   int
	GrossBookedValue int64
	Currency         string
}
