// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatchops/internal/core/ports"
)

// TokenSource produces opaque voucher bearer tokens. Handlers never pick
// tokens themselves so tests can make issuance deterministic.
type TokenSource interface {
	NewToken() (string, error)
}

// Unit of Work interfaces provide transaction management for command handlers.
// Each command declares the narrowest combination of repositories it needs,
// so handler tests mock only what the handler touches.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// ExecutorRepoFactory provides access to the executor repository within a transaction.
	ExecutorRepoFactory interface {
		ExecutorRepository() ports.ExecutorRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// RevokedTokenRepoFactory provides access to the revocation list within a transaction.
	RevokedTokenRepoFactory interface {
		RevokedTokenRepository() ports.RevokedTokenRepository
	}

	// OrderUoW manages transactions for order mutations that touch no other
	// aggregate. Every mutation writes an audit entry, so the audit
	// repository rides along.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AuditRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BookingUoW manages transactions for order creation, which also
	// increments the owning client's order counter.
	BookingUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
		AuditRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// VoucherUoW manages transactions for voucher regeneration, which
	// revokes the superseded token in the same transaction.
	VoucherUoW interface {
		TxManager
		OrderRepoFactory
		RevokedTokenRepoFactory
		AuditRepoFactory
	}

	// VoucherUoWFactory creates new voucher unit of work instances.
	VoucherUoWFactory interface {
		Create() VoucherUoW
	}

	// AssignmentUoW manages transactions for executor assignment, which
	// reads the executor roster while mutating the order.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		ExecutorRepoFactory
		AuditRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
		AuditRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// ExecutorUoW manages transactions for executor-only operations.
	ExecutorUoW interface {
		TxManager
		ExecutorRepoFactory
		AuditRepoFactory
	}

	// ExecutorUoWFactory creates new executor unit of work instances.
	ExecutorUoWFactory interface {
		Create() ExecutorUoW
	}
)
