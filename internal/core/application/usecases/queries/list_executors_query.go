package queries

import (
	"errors"

	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/guard"
)

var ErrListExecutorsQueryIsNotConstructed = errors.New(
	"ListExecutorsQuery must be created via NewListExecutorsQuery constructor",
)

// ListExecutorsQuery retrieves the full executor roster.
type ListExecutorsQuery struct {
	guard guard.ConstructorGuard
}

// NewListExecutorsQuery creates a query to retrieve all executors.
func NewListExecutorsQuery() ListExecutorsQuery {
	return ListExecutorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListExecutorsQuery) Validate() error {
	return q.guard.Validate(ErrListExecutorsQueryIsNotConstructed)
}

// ListExecutorsQueryResponse represents one executor in the read model.
type ListExecutorsQueryResponse struct {
	ID           kernel.ExecutorID
	Name         string
	Phone        string
	Vehicle      string
	Availability executor.Availability
}
