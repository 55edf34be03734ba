package ports

import (
	"context"

	"dispatchops/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for the audit trail.
// Entries are append-only: there is no update or delete, and the store
// preserves insertion order.
type AuditRepository interface {
	// Append persists a new audit entry.
	Append(ctx context.Context, entry audit.Entry) error
}
