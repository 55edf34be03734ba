package queries

import (
	"errors"
	"time"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
	"dispatchops/internal/core/domain/services"
	"dispatchops/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the order board for one viewer. Role-based
// visibility is part of the query: a driver gets only their assignments, a
// partner only their bookings.
//
// Example:
//
//	viewer, _ := services.NewViewer(services.Dispatcher, actorID)
//	query, _ := NewListOrdersQuery(viewer)
//	board, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	viewer services.Viewer

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the given viewer.
func NewListOrdersQuery(viewer services.Viewer) (ListOrdersQuery, error) {
	if err := viewer.Role().Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		viewer: viewer,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Viewer returns who is reading the board.
func (q ListOrdersQuery) Viewer() services.Viewer {
	return q.viewer
}

// VoucherView is the read model of an order's voucher. The token is
// exposed here because the board is where operators copy it from.
type VoucherView struct {
	Token       string
	IsActive    bool
	GeneratedAt time.Time
	ExpiresAt   time.Time
}

// HistoryEntryView is the read model of one status history entry.
type HistoryEntryView struct {
	From   string
	To     string
	At     time.Time
	Actor  string
	Reason string
}

// ListOrdersQueryResponse represents one order row on the board.
type ListOrdersQueryResponse struct {
	ID          kernel.OrderID
	ClientID    kernel.ClientID
	ExecutorID  *kernel.ExecutorID
	Price       kernel.Money
	Status      order.Status
	ScheduledAt time.Time
	Route       kernel.Route
	Voucher     *VoucherView
	History     []HistoryEntryView
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
