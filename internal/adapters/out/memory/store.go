// Package memory provides the in-process storage driver. All state lives
// behind one RWMutex: units of work take the write lock for their whole
// lifetime, so two concurrent mutations of the same order cannot
// interleave, and readers take the read lock and hand out deep copies.
//
// It is the default driver and the reference semantics for the postgres
// driver; both satisfy the same ports and reader contracts.
package memory

import (
	"context"
	"sync"

	"dispatchops/internal/core/domain/model/audit"
	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
	"dispatchops/internal/core/ports"
	"dispatchops/internal/pkg/errs"
)

// Store is the in-process ledger. The zero value is not usable; construct
// with NewStore.
type Store struct {
	mu        sync.RWMutex
	orders    map[string]*order.Order
	clients   map[string]*client.Client
	executors map[string]*executor.Executor
	trail     []audit.Entry
	revoked   map[string]struct{}
}

// NewStore creates an empty ledger.
func NewStore() *Store {
	return &Store{
		orders:    make(map[string]*order.Order),
		clients:   make(map[string]*client.Client),
		executors: make(map[string]*executor.Executor),
		revoked:   make(map[string]struct{}),
	}
}

// Create produces a new UnitOfWork backed by this store.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// cloneOrder rebuilds an aggregate so callers can mutate their copy
// without touching ledger state.
func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		o.ID(),
		o.ClientID(),
		o.ExecutorID(),
		o.Price(),
		o.Status(),
		o.ScheduledAt(),
		o.Route(),
		o.History(),
		o.Voucher(),
		o.CreatedAt(),
		o.UpdatedAt(),
	)
}

func cloneClient(c *client.Client) (*client.Client, error) {
	return client.RestoreClient(c.ID(), c.Name(), c.Email(), c.Phone(), c.Category(), c.TotalOrders())
}

func cloneExecutor(e *executor.Executor) (*executor.Executor, error) {
	return executor.RestoreExecutor(e.ID(), e.Name(), e.Phone(), e.Vehicle(), e.Availability())
}

// AllOrders returns deep copies of every order on the ledger.
func (s *Store) AllOrders(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		clone, err := cloneOrder(o)
		if err != nil {
			return nil, err
		}
		orders = append(orders, clone)
	}
	return orders, nil
}

// OrderByID returns a deep copy of one order.
func (s *Store) OrderByID(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id.String())
	}
	return cloneOrder(o)
}

// AllClients returns deep copies of the client roster.
func (s *Store) AllClients(_ context.Context) ([]*client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := make([]*client.Client, 0, len(s.clients))
	for _, c := range s.clients {
		clone, err := cloneClient(c)
		if err != nil {
			return nil, err
		}
		clients = append(clients, clone)
	}
	return clients, nil
}

// AllExecutors returns deep copies of the executor roster.
func (s *Store) AllExecutors(_ context.Context) ([]*executor.Executor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	executors := make([]*executor.Executor, 0, len(s.executors))
	for _, e := range s.executors {
		clone, err := cloneExecutor(e)
		if err != nil {
			return nil, err
		}
		executors = append(executors, clone)
	}
	return executors, nil
}

// AllEntries returns the audit trail in insertion order. Entries are
// immutable values, so no cloning is needed.
func (s *Store) AllEntries(_ context.Context) ([]audit.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]audit.Entry(nil), s.trail...), nil
}

// EntriesForEntity returns the audit entries of one entity in insertion order.
func (s *Store) EntriesForEntity(_ context.Context, entityID string) ([]audit.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []audit.Entry
	for _, entry := range s.trail {
		if entry.EntityID() == entityID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// IsRevoked reports whether a token hash is on the revocation list.
func (s *Store) IsRevoked(_ context.Context, tokenHash string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, revoked := s.revoked[tokenHash]
	return revoked, nil
}
