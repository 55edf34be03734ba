package queries

import (
	"context"
	"sort"

	"dispatchops/internal/core/domain/model/audit"
)

// GetAuditTrailQueryHandler builds the audit trail read model, newest
// entries first.
type GetAuditTrailQueryHandler struct {
	entries AuditReader
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
func NewGetAuditTrailQueryHandler(entries AuditReader) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{entries: entries}
}

// Handle executes the audit trail query.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		entries []audit.Entry
		err     error
	)
	if query.EntityID() == "" {
		entries, err = h.entries.AllEntries(ctx)
	} else {
		entries, err = h.entries.EntriesForEntity(ctx, query.EntityID())
	}
	if err != nil {
		return nil, err
	}

	rows := make([]GetAuditTrailQueryResponse, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, GetAuditTrailQueryResponse{
			ID:         entry.ID(),
			EntityType: entry.EntityType().String(),
			EntityID:   entry.EntityID(),
			Action:     entry.Action().String(),
			OccurredAt: entry.OccurredAt(),
			Actor:      entry.Actor().String(),
			Details:    entry.Details(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OccurredAt.After(rows[j].OccurredAt)
	})
	return rows, nil
}
