package ports

import (
	"context"

	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"
)

// ExecutorRepository defines the persistence contract for executor aggregates.
type ExecutorRepository interface {
	// Add persists a new executor aggregate to storage.
	// The executor must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *executor.Executor) error

	// Update persists changes to an existing executor aggregate.
	// The executor must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *executor.Executor) error

	// Get retrieves an executor aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ExecutorID) (*executor.Executor, error)
}
