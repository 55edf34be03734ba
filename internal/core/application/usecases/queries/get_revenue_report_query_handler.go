package queries

import (
	"context"
	"sort"

	"dispatchops/internal/core/domain/model/order"
)

// GetRevenueReportQueryHandler computes the accounting read model.
// Revenue is recognized on completion only; booked but unfinished orders
// contribute to status counts and nothing else.
type GetRevenueReportQueryHandler struct {
	orders OrderReader
}

// NewGetRevenueReportQueryHandler creates a handler for revenue reports.
func NewGetRevenueReportQueryHandler(orders OrderReader) GetRevenueReportQueryHandler {
	return GetRevenueReportQueryHandler{orders: orders}
}

// Handle executes the revenue report query.
func (h GetRevenueReportQueryHandler) Handle(
	ctx context.Context,
	query GetRevenueReportQuery,
) (GetRevenueReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRevenueReportQueryResponse{}, err
	}

	all, err := h.orders.AllOrders(ctx)
	if err != nil {
		return GetRevenueReportQueryResponse{}, err
	}

	report := GetRevenueReportQueryResponse{
		OrdersByStatus: make(map[string]int),
	}
	byDay := make(map[string]int64)
	completed := 0

	for _, o := range all {
		report.OrdersByStatus[o.Status().String()]++

		if o.Status() != order.Completed {
			continue
		}

		if report.Currency == "" {
			report.Currency = o.Price().Currency()
		}
		if err = requireSameCurrency(report.Currency, o.Price().Currency()); err != nil {
			return GetRevenueReportQueryResponse{}, err
		}

		report.RecognizedRevenue += o.Price().Amount()
		byDay[o.ScheduledAt().UTC().Format("2006-01-02")] += o.Price().Amount()
		completed++
	}

	for day, revenue := range byDay {
		report.RevenueByDay = append(report.RevenueByDay, DailyRevenue{Day: day, Revenue: revenue})
	}
	sort.Slice(report.RevenueByDay, func(i, j int) bool {
		return report.RevenueByDay[i].Day < report.RevenueByDay[j].Day
	})

	if completed > 0 {
		report.AverageOrderValue = report.RecognizedRevenue / int64(completed)
	}

	return report, nil
}
