package queries_test

import (
	"testing"

	"dispatchops/internal/core/application/usecases/queries"
	"dispatchops/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStatsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should compute headline numbers", func(t *testing.T) {
		active := newOrder(t, "ORD-5001", 10000, reportTime)

		doneToday := newOrder(t, "ORD-5002", 20000, reportTime)
		advanceTo(t, doneToday, order.Confirmed, order.Assigned, order.InProgress, order.PickedUp, order.Completed)

		doneEarlier := newOrder(t, "ORD-5003", 30000, reportTime.AddDate(0, 0, -3))
		advanceTo(t, doneEarlier, order.Confirmed, order.Assigned, order.InProgress, order.PickedUp, order.Completed)

		cancelled := newOrder(t, "ORD-5004", 40000, reportTime)
		advanceTo(t, cancelled, order.Cancelled)

		orders := new(MockOrderReader)
		orders.On("AllOrders", ctx).
			Return([]*order.Order{active, doneToday, doneEarlier, cancelled}, nil).Once()

		query, err := queries.NewGetDashboardStatsQuery(reportTime)
		require.NoError(t, err)

		handler := queries.NewGetDashboardStatsQueryHandler(orders)
		stats, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, 4, stats.TotalOrders)
		assert.Equal(t, 1, stats.ActiveOrders)
		assert.Equal(t, 1, stats.CompletedToday)
		assert.Equal(t, int64(100000), stats.GrossBookedValue)
		assert.Equal(t, "USD", stats.Currency)
	})

	t.Run("should return zeroes for an empty ledger", func(t *testing.T) {
		orders := new(MockOrderReader)
		orders.On("AllOrders", ctx).Return([]*order.Order{}, nil).Once()

		query, err := queries.NewGetDashboardStatsQuery(reportTime)
		require.NoError(t, err)

		handler := queries.NewGetDashboardStatsQueryHandler(orders)
		stats, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Zero(t, stats.TotalOrders)
		assert.Zero(t, stats.GrossBookedValue)
	})

	t.Run("should reject zero-value query", func(t *testing.T) {
		var zero queries.GetDashboardStatsQuery

		handler := queries.NewGetDashboardStatsQueryHandler(new(MockOrderReader))
		_, err := handler.Handle(ctx, zero)

		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrGetDashboardStatsQueryIsNotConstructed)
	})
}
