package queries

import (
	"context"
	"sort"
)

// ListClientsQueryHandler builds the client roster read model, sorted by
// identifier for a stable listing.
type ListClientsQueryHandler struct {
	clients ClientReader
}

// NewListClientsQueryHandler creates a handler for client roster queries.
func NewListClientsQueryHandler(clients ClientReader) ListClientsQueryHandler {
	return ListClientsQueryHandler{clients: clients}
}

// Handle executes the query to retrieve all clients.
func (h ListClientsQueryHandler) Handle(
	ctx context.Context,
	query ListClientsQuery,
) ([]ListClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.clients.AllClients(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ListClientsQueryResponse, 0, len(all))
	for _, c := range all {
		rows = append(rows, ListClientsQueryResponse{
			ID:          c.ID(),
			Name:        c.Name(),
			Email:       c.Email(),
			Phone:       c.Phone(),
			Category:    c.Category(),
			TotalOrders: c.TotalOrders(),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ID.String() < rows[j].ID.String()
	})
	return rows, nil
}
