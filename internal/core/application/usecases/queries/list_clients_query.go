package queries

import (
	"errors"

	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/guard"
)

var ErrListClientsQueryIsNotConstructed = errors.New(
	"ListClientsQuery must be created via NewListClientsQuery constructor",
)

// ListClientsQuery retrieves the full client roster.
type ListClientsQuery struct {
	guard guard.ConstructorGuard
}

// NewListClientsQuery creates a query to retrieve all clients.
// This is a parameterless query that fetches the complete roster.
func NewListClientsQuery() ListClientsQuery {
	return ListClientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

// ListClientsQueryResponse represents one client in the read model.
type ListClientsQueryResponse struct {
	ID          kernel.ClientID
	Name        string
	Email       string
	Phone       string
	Category    client.Category
	TotalOrders int
}
