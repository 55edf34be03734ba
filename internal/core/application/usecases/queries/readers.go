// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"context"

	"dispatchops/internal/core/domain/model/audit"
	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
)

// Read interfaces decouple query handlers from the storage driver, so the
// in-process ledger and the database share one read contract. Handlers
// never mutate what readers return.
type (
	// OrderReader provides read access to the order ledger.
	OrderReader interface {
		AllOrders(ctx context.Context) ([]*order.Order, error)
		OrderByID(ctx context.Context, id kernel.OrderID) (*order.Order, error)
	}

	// ClientReader provides read access to the client roster.
	ClientReader interface {
		AllClients(ctx context.Context) ([]*client.Client, error)
	}

	// ExecutorReader provides read access to the executor roster.
	ExecutorReader interface {
		AllExecutors(ctx context.Context) ([]*executor.Executor, error)
	}

	// AuditReader provides read access to the audit trail.
	AuditReader interface {
		AllEntries(ctx context.Context) ([]audit.Entry, error)
		EntriesForEntity(ctx context.Context, entityID string) ([]audit.Entry, error)
	}

	// RevocationReader answers whether a voucher token hash has been revoked.
	RevocationReader interface {
		IsRevoked(ctx context.Context, tokenHash string) (bool, error)
	}
)
