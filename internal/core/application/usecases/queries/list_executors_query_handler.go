package queries

import (
	"context"
	"sort"
)

// ListExecutorsQueryHandler builds the executor roster read model, sorted
// by identifier for a stable listing.
type ListExecutorsQueryHandler struct {
	executors ExecutorReader
}

// NewListExecutorsQueryHandler creates a handler for executor roster queries.
func NewListExecutorsQueryHandler(executors ExecutorReader) ListExecutorsQueryHandler {
	return ListExecutorsQueryHandler{executors: executors}
}

// Handle executes the query to retrieve all executors.
func (h ListExecutorsQueryHandler) Handle(
	ctx context.Context,
	query ListExecutorsQuery,
) ([]ListExecutorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.executors.AllExecutors(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ListExecutorsQueryResponse, 0, len(all))
	for _, e := range all {
		rows = append(rows, ListExecutorsQueryResponse{
			ID:           e.ID(),
			Name:         e.Name(),
			Phone:        e.Phone(),
			Vehicle:      e.Vehicle(),
			Availability: e.Availability(),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ID.String() < rows[j].ID.String()
	})
	return rows, nil
}
