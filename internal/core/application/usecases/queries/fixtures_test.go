package queries_test

import (
	"testing"
	"time"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
	"dispatchops/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var reportTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, id string, amount int64, scheduledAt time.Time) *order.Order {
	t.Helper()

	orderID, err := kernel.OrderIDFromString(id)
	require.NoError(t, err)
	price, err := kernel.NewMoney(amount, "USD")
	require.NoError(t, err)
	route, err := kernel.NewRoute("LGA Airport", "Brooklyn Heights")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(orderID, kernel.NewClientID(), price, scheduledAt, route, reportTime)
	require.NoError(t, err)
	return aggregate
}

func advanceTo(t *testing.T, aggregate *order.Order, path ...order.Status) {
	t.Helper()
	actor, err := kernel.ActorIDFromString("USR-001")
	require.NoError(t, err)
	for _, status := range path {
		require.NoError(t, aggregate.ChangeStatus(status, actor, "", reportTime))
	}
}

func adminViewer(t *testing.T) services.Viewer {
	t.Helper()
	actor, err := kernel.ActorIDFromString("USR-001")
	require.NoError(t, err)
	viewer, err := services.NewViewer(services.Admin, actor)
	require.NoError(t, err)
	return viewer
}
