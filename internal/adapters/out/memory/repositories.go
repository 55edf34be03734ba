package memory

import (
	"context"
	"fmt"

	"dispatchops/internal/core/domain/model/audit"
	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
	"dispatchops/internal/pkg/errs"
)

// Repositories stage clones of the aggregates they are given, so later
// mutations by the caller cannot leak into the ledger before Commit.

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.uow.store.orders[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%s already exists", key))
	}

	clone, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}
	return r.uow.stage(func() { r.uow.store.orders[key] = clone })
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.uow.store.orders[key]; !exists {
		return errs.NewObjectNotFoundError("orderID", key)
	}

	clone, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}
	return r.uow.stage(func() { r.uow.store.orders[key] = clone })
}

func (r *orderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o, ok := r.uow.store.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id.String())
	}
	return cloneOrder(o)
}

func (r *orderRepository) GetAllWithActiveVouchers(_ context.Context) ([]*order.Order, error) {
	var candidates []*order.Order
	for _, o := range r.uow.store.orders {
		voucher := o.Voucher()
		if voucher == nil || !voucher.IsActive() {
			continue
		}

		clone, err := cloneOrder(o)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, clone)
	}
	return candidates, nil
}

type clientRepository struct {
	uow *UnitOfWork
}

func (r *clientRepository) Add(_ context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.uow.store.clients[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause("clientID",
			fmt.Errorf("%s already exists", key))
	}

	clone, err := cloneClient(aggregate)
	if err != nil {
		return err
	}
	return r.uow.stage(func() { r.uow.store.clients[key] = clone })
}

func (r *clientRepository) Update(_ context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.uow.store.clients[key]; !exists {
		return errs.NewObjectNotFoundError("clientID", key)
	}

	clone, err := cloneClient(aggregate)
	if err != nil {
		return err
	}
	return r.uow.stage(func() { r.uow.store.clients[key] = clone })
}

func (r *clientRepository) Get(_ context.Context, id kernel.ClientID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c, ok := r.uow.store.clients[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("clientID", id.String())
	}
	return cloneClient(c)
}

type executorRepository struct {
	uow *UnitOfWork
}

func (r *executorRepository) Add(_ context.Context, aggregate *executor.Executor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.uow.store.executors[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause("executorID",
			fmt.Errorf("%s already exists", key))
	}

	clone, err := cloneExecutor(aggregate)
	if err != nil {
		return err
	}
	return r.uow.stage(func() { r.uow.store.executors[key] = clone })
}

func (r *executorRepository) Update(_ context.Context, aggregate *executor.Executor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.uow.store.executors[key]; !exists {
		return errs.NewObjectNotFoundError("executorID", key)
	}

	clone, err := cloneExecutor(aggregate)
	if err != nil {
		return err
	}
	return r.uow.stage(func() { r.uow.store.executors[key] = clone })
}

func (r *executorRepository) Get(_ context.Context, id kernel.ExecutorID) (*executor.Executor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	e, ok := r.uow.store.executors[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("executorID", id.String())
	}
	return cloneExecutor(e)
}

type auditRepository struct {
	uow *UnitOfWork
}

func (r *auditRepository) Append(_ context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	return r.uow.stage(func() { r.uow.store.trail = append(r.uow.store.trail, entry) })
}

type revokedTokenRepository struct {
	uow *UnitOfWork
}

func (r *revokedTokenRepository) Add(_ context.Context, tokenHash string) error {
	if tokenHash == "" {
		return errs.NewValueIsRequiredError("tokenHash")
	}

	return r.uow.stage(func() { r.uow.store.revoked[tokenHash] = struct{}{} })
}
