package queries

import (
	"context"
	"sort"

	"dispatchops/internal/core/domain/model/order"
	"dispatchops/internal/core/domain/services"
)

// ListOrdersQueryHandler builds the order board read model. Orders are
// sorted by scheduled date descending with ascending identifier as the
// tie-break, then filtered by the viewer's role.
type ListOrdersQueryHandler struct {
	orders     OrderReader
	visibility services.OrderVisibility
}

// NewListOrdersQueryHandler creates a handler for order board queries.
func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		orders:     orders,
		visibility: services.NewOrderVisibility(),
	}
}

// Handle executes the query and returns the visible rows.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.AllOrders(ctx)
	if err != nil {
		return nil, err
	}

	visible := h.visibility.Filter(query.Viewer(), all)
	sort.SliceStable(visible, func(i, j int) bool {
		if !visible[i].ScheduledAt().Equal(visible[j].ScheduledAt()) {
			return visible[i].ScheduledAt().After(visible[j].ScheduledAt())
		}
		return visible[i].ID().String() < visible[j].ID().String()
	})

	rows := make([]ListOrdersQueryResponse, 0, len(visible))
	for _, o := range visible {
		rows = append(rows, toOrderRow(o))
	}
	return rows, nil
}

func toOrderRow(o *order.Order) ListOrdersQueryResponse {
	row := ListOrdersQueryResponse{
		ID:          o.ID(),
		ClientID:    o.ClientID(),
		ExecutorID:  o.ExecutorID(),
		Price:       o.Price(),
		Status:      o.Status(),
		ScheduledAt: o.ScheduledAt(),
		Route:       o.Route(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}

	if v := o.Voucher(); v != nil {
		row.Voucher = &VoucherView{
			Token:       v.Token(),
			IsActive:    v.IsActive(),
			GeneratedAt: v.GeneratedAt(),
			ExpiresAt:   v.ExpiresAt(),
		}
	}

	for _, entry := range o.History() {
		view := HistoryEntryView{
			To:     entry.To().String(),
			At:     entry.At(),
			Actor:  entry.Actor().String(),
			Reason: entry.Reason(),
		}
		if from := entry.From(); from != nil {
			view.From = from.String()
		}
		row.History = append(row.History, view)
	}

	return row
}
