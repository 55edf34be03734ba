package queries

import (
	"errors"

	"dispatchops/internal/pkg/guard"
)

var ErrGetRevenueReportQueryIsNotConstructed = errors.New(
	"GetRevenueReportQuery must be created via NewGetRevenueReportQuery constructor",
)

// GetRevenueReportQuery retrieves the accounting view of the ledger.
// Unlike the dashboard's gross booked value, the report recognizes
// revenue only from COMPLETED orders.
type GetRevenueReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRevenueReportQuery creates a revenue report query.
func NewGetRevenueReportQuery() GetRevenueReportQuery {
	return GetRevenueReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRevenueReportQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueReportQueryIsNotConstructed)
}

// DailyRevenue is recognized revenue for one scheduled service day.
type DailyRevenue struct {
	// Day in "2006-01-02" form, UTC.
	Day     string
	Revenue int64
}

// GetRevenueReportQueryResponse carries the accounting read model.
// All amounts are minor units in Currency.
type GetRevenueReportQueryResponse struct {
	RecognizedRevenue int64
	Currency          string

	// RevenueByDay covers only days with at least one completed order,
	// ascending by day.
	RevenueByDay []DailyRevenue

	// OrdersByStatus counts every order on the ledger keyed by status
	// wire name.
	OrdersByStatus map[string]int

	// AverageOrderValue is recognized revenue divided by completed order
	// count, zero when nothing is completed.
	AverageOrderValue int64
}
