package commands_test

import (
	"testing"
	"time"

	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

func fixtureActor(t *testing.T) kernel.ActorID {
	t.Helper()
	actor, err := kernel.ActorIDFromString("USR-001")
	require.NoError(t, err)
	return actor
}

func fixtureMoney(t *testing.T) kernel.Money {
	t.Helper()
	price, err := kernel.NewMoney(12500, "USD")
	require.NoError(t, err)
	return price
}

func fixtureRoute(t *testing.T) kernel.Route {
	t.Helper()
	route, err := kernel.NewRoute("JFK Airport", "Manhattan Midtown")
	require.NoError(t, err)
	return route
}

func fixtureOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewOrderID(),
		kernel.NewClientID(),
		fixtureMoney(t),
		fixtureTime,
		fixtureRoute(t),
		fixtureTime,
	)
	require.NoError(t, err)
	return aggregate
}

func fixtureOrderWithVoucher(t *testing.T, token string, issuedAt time.Time) *order.Order {
	t.Helper()
	aggregate := fixtureOrder(t)
	voucher, err := order.NewVoucher(token, issuedAt)
	require.NoError(t, err)
	require.NoError(t, aggregate.AttachVoucher(voucher, issuedAt))
	return aggregate
}

func fixtureClient(t *testing.T) *client.Client {
	t.Helper()
	aggregate, err := client.NewClient(
		kernel.NewClientID(),
		"Grand Horizon Hotels",
		"bookings@grandhorizon.example",
		"+1-212-555-0134",
		client.Business,
	)
	require.NoError(t, err)
	return aggregate
}

func fixtureExecutor(t *testing.T) *executor.Executor {
	t.Helper()
	aggregate, err := executor.NewExecutor(
		kernel.NewExecutorID(),
		"Marcus Webb",
		"+1-917-555-0188",
		"Black Suburban #12",
	)
	require.NoError(t, err)
	return aggregate
}
