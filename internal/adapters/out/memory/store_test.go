package memory_test

import (
	"sync"
	"testing"
	"time"

	"dispatchops/internal/adapters/out/memory"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
	"dispatchops/internal/core/domain/services"
	"dispatchops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedTime = time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)

func storeOrder(t *testing.T, store *memory.Store) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(15000, "USD")
	require.NoError(t, err)
	route, err := kernel.NewRoute("JFK Airport", "Tribeca")
	require.NoError(t, err)
	aggregate, err := order.NewOrder(kernel.NewOrderID(), kernel.NewClientID(), price, seedTime, route, seedTime)
	require.NoError(t, err)

	ctx := t.Context()
	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))
	return aggregate
}

func TestStore_UnitOfWork(t *testing.T) {
	ctx := t.Context()

	t.Run("should persist staged writes on commit", func(t *testing.T) {
		store := memory.NewStore()
		aggregate := storeOrder(t, store)

		stored, err := store.OrderByID(ctx, aggregate.ID())
		require.NoError(t, err)
		assert.True(t, stored.IsEqual(aggregate))
		assert.Equal(t, order.New, stored.Status())
	})

	t.Run("should discard staged writes on rollback", func(t *testing.T) {
		store := memory.NewStore()
		aggregate := storeOrder(t, store)

		actor, err := kernel.ActorIDFromString("USR-001")
		require.NoError(t, err)

		uow := store.Create()
		require.NoError(t, uow.Begin(ctx))
		loaded, err := uow.OrderRepository().Get(ctx, aggregate.ID())
		require.NoError(t, err)
		require.NoError(t, loaded.ChangeStatus(order.Confirmed, actor, "", seedTime))
		require.NoError(t, uow.OrderRepository().Update(ctx, loaded))
		require.NoError(t, uow.Rollback(ctx))

		stored, err := store.OrderByID(ctx, aggregate.ID())
		require.NoError(t, err)
		assert.Equal(t, order.New, stored.Status())
	})

	t.Run("should reject commit without begin", func(t *testing.T) {
		store := memory.NewStore()
		uow := store.Create()

		require.ErrorIs(t, uow.Commit(ctx), memory.ErrNoActiveTransaction)
		require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)
	})

	t.Run("should report unknown ids as not found", func(t *testing.T) {
		store := memory.NewStore()

		_, err := store.OrderByID(ctx, kernel.NewOrderID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should serialize concurrent status changes", func(t *testing.T) {
		store := memory.NewStore()
		aggregate := storeOrder(t, store)

		actor, err := kernel.ActorIDFromString("USR-001")
		require.NoError(t, err)

		var wg sync.WaitGroup
		results := make([]error, 2)
		for i := range results {
			wg.Add(1)
			go func(slot int) {
				defer wg.Done()

				uow := store.Create()
				if err := uow.Begin(ctx); err != nil {
					results[slot] = err
					return
				}
				defer func() { _ = uow.Rollback(ctx) }()

				loaded, err := uow.OrderRepository().Get(ctx, aggregate.ID())
				if err != nil {
					results[slot] = err
					return
				}
				if err = loaded.ChangeStatus(order.Confirmed, actor, "", seedTime); err != nil {
					results[slot] = err
					return
				}
				if err = uow.OrderRepository().Update(ctx, loaded); err != nil {
					results[slot] = err
					return
				}
				results[slot] = uow.Commit(ctx)
			}(i)
		}
		wg.Wait()

		// Writers serialize on the ledger lock: whoever runs second sees
		// the order already CONFIRMED and its transition is rejected.
		var failures int
		for _, result := range results {
			if result != nil {
				require.ErrorIs(t, result, order.ErrInvalidTransition)
				failures++
			}
		}
		assert.Equal(t, 1, failures)

		stored, err := store.OrderByID(ctx, aggregate.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, stored.Status())
		assert.Len(t, stored.History(), 1)
	})

	t.Run("should isolate returned copies from ledger state", func(t *testing.T) {
		store := memory.NewStore()
		aggregate := storeOrder(t, store)

		actor, err := kernel.ActorIDFromString("USR-001")
		require.NoError(t, err)

		copyA, err := store.OrderByID(ctx, aggregate.ID())
		require.NoError(t, err)
		require.NoError(t, copyA.ChangeStatus(order.Confirmed, actor, "", seedTime))

		copyB, err := store.OrderByID(ctx, aggregate.ID())
		require.NoError(t, err)
		assert.Equal(t, order.New, copyB.Status())
	})
}

func TestSeed(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()

	require.NoError(t, memory.Seed(store, services.NewSecureTokenSource(), seedTime))

	orders, err := store.AllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 6)

	clients, err := store.AllClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 5)

	executors, err := store.AllExecutors(ctx)
	require.NoError(t, err)
	assert.Len(t, executors, 3)

	for _, o := range orders {
		require.NotNil(t, o.Voucher(), "order %s has no voucher", o.ID())
	}
}
