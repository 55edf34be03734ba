package ports

import (
	"context"

	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client aggregate to storage.
	// The client must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client aggregate.
	// The client must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ClientID) (*client.Client, error)
}
