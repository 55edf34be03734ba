package queries

import (
	"context"
	"time"

	"dispatchops/internal/core/domain/model/order"
)

// GetDashboardStatsQueryHandler computes the dashboard headline numbers
// from the order ledger in one pass.
type GetDashboardStatsQueryHandler struct {
	orders OrderReader
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats.
func NewGetDashboardStatsQueryHandler(orders OrderReader) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{orders: orders}
}

// Handle executes the stats query.
// "Completed today" compares the scheduled date with the query's reference
// date in UTC. Gross booked value requires a single-currency ledger and
// fails on a currency mismatch rather than adding apples to oranges.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	all, err := h.orders.AllOrders(ctx)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	today := query.At().UTC().Truncate(24 * time.Hour)
	stats := GetDashboardStatsQueryResponse{TotalOrders: len(all)}

	for _, o := range all {
		if o.Status().IsActive() {
			stats.ActiveOrders++
		}
		if o.Status() == order.Completed && o.ScheduledAt().UTC().Truncate(24*time.Hour).Equal(today) {
			stats.CompletedToday++
		}

		if stats.Currency == "" {
			stats.Currency = o.Price().Currency()
		}
		if err = requireSameCurrency(stats.Currency, o.Price().Currency()); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}
		stats.GrossBookedValue += o.Price().Amount()
	}

	return stats, nil
}
