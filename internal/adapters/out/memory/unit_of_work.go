package memory

import (
	"context"
	"errors"

	"dispatchops/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when the unit
// of work holds no lock.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWork is the memory driver's transaction. Begin takes the store's
// write lock and Commit/Rollback release it, so a unit of work is the sole
// writer and sees a frozen ledger for its whole lifetime.
//
// Mutations are staged on the unit of work and applied to the store only
// at Commit; Rollback simply discards them. Reads go straight to the store
// and return deep copies, which matches how command handlers work: load,
// mutate the copy, hand it back through Update.
type UnitOfWork struct {
	store  *Store
	active bool
	staged []func()
}

// Begin takes the ledger write lock. Calling Begin on an active unit of
// work is a no-op, mirroring the database driver.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.active = true
	uow.staged = nil
	return nil
}

// Commit applies every staged mutation and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	for _, apply := range uow.staged {
		apply()
	}
	uow.staged = nil
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// Rollback discards staged mutations and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.staged = nil
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// OrderRepository returns the order repository bound to this transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

// ClientRepository returns the client repository bound to this transaction.
func (uow *UnitOfWork) ClientRepository() ports.ClientRepository {
	return &clientRepository{uow: uow}
}

// ExecutorRepository returns the executor repository bound to this transaction.
func (uow *UnitOfWork) ExecutorRepository() ports.ExecutorRepository {
	return &executorRepository{uow: uow}
}

// AuditRepository returns the audit repository bound to this transaction.
func (uow *UnitOfWork) AuditRepository() ports.AuditRepository {
	return &auditRepository{uow: uow}
}

// RevokedTokenRepository returns the revocation list bound to this transaction.
func (uow *UnitOfWork) RevokedTokenRepository() ports.RevokedTokenRepository {
	return &revokedTokenRepository{uow: uow}
}

func (uow *UnitOfWork) stage(apply func()) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.staged = append(uow.staged, apply)
	return nil
}
