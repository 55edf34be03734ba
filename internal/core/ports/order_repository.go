// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their status history and attached voucher.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its history and voucher.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAllWithActiveVouchers retrieves every order carrying a voucher
	// that is still marked active, regardless of its expiry time. Used by
	// the voucher expiry sweep to find deactivation candidates.
	GetAllWithActiveVouchers(ctx context.Context) ([]*order.Order, error)
}
