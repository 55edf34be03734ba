package queries_test

import (
	"testing"
	"time"

	"dispatchops/internal/core/application/usecases/queries"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
	"dispatchops/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should sort by scheduled date descending with id tie-break", func(t *testing.T) {
		early := newOrder(t, "ORD-1001", 10000, reportTime.AddDate(0, 0, -2))
		lateB := newOrder(t, "ORD-2002", 10000, reportTime)
		lateA := newOrder(t, "ORD-2001", 10000, reportTime)

		orders := new(MockOrderReader)
		orders.On("AllOrders", ctx).Return([]*order.Order{early, lateB, lateA}, nil).Once()

		query, err := queries.NewListOrdersQuery(adminViewer(t))
		require.NoError(t, err)

		handler := queries.NewListOrdersQueryHandler(orders)
		rows, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "ORD-2001", rows[0].ID.String())
		assert.Equal(t, "ORD-2002", rows[1].ID.String())
		assert.Equal(t, "ORD-1001", rows[2].ID.String())
	})

	t.Run("should scope driver to own assignments", func(t *testing.T) {
		mine := newOrder(t, "ORD-3001", 10000, reportTime)
		driverID := kernel.NewExecutorID()
		require.NoError(t, mine.AssignExecutor(driverID, reportTime))
		other := newOrder(t, "ORD-3002", 10000, reportTime)

		orders := new(MockOrderReader)
		orders.On("AllOrders", ctx).Return([]*order.Order{mine, other}, nil).Once()

		actor, err := kernel.ActorIDFromString(driverID.String())
		require.NoError(t, err)
		viewer, err := services.NewViewer(services.Driver, actor)
		require.NoError(t, err)

		query, err := queries.NewListOrdersQuery(viewer)
		require.NoError(t, err)

		handler := queries.NewListOrdersQueryHandler(orders)
		rows, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "ORD-3001", rows[0].ID.String())
	})

	t.Run("should project voucher and history", func(t *testing.T) {
		aggregate := newOrder(t, "ORD-4001", 10000, reportTime)
		voucher, err := order.NewVoucher("BOARDTOKENAAAAAAAAAA", reportTime)
		require.NoError(t, err)
		require.NoError(t, aggregate.AttachVoucher(voucher, reportTime))
		advanceTo(t, aggregate, order.Confirmed)

		orders := new(MockOrderReader)
		orders.On("AllOrders", ctx).Return([]*order.Order{aggregate}, nil).Once()

		query, err := queries.NewListOrdersQuery(adminViewer(t))
		require.NoError(t, err)

		handler := queries.NewListOrdersQueryHandler(orders)
		rows, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].Voucher)
		assert.Equal(t, "BOARDTOKENAAAAAAAAAA", rows[0].Voucher.Token)
		assert.Equal(t, reportTime.Add(48*time.Hour), rows[0].Voucher.ExpiresAt)
		require.Len(t, rows[0].History, 1)
		assert.Equal(t, "NEW", rows[0].History[0].From)
		assert.Equal(t, "CONFIRMED", rows[0].History[0].To)
	})

	t.Run("should reject zero-value query", func(t *testing.T) {
		var query queries.ListOrdersQuery

		handler := queries.NewListOrdersQueryHandler(new(MockOrderReader))
		_, err := handler.Handle(ctx, query)

		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
	})
}
