package queries

import (
	"errors"
	"time"

	"dispatchops/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// GetAuditTrailQuery retrieves audit entries, newest first, optionally
// narrowed to one entity.
type GetAuditTrailQuery struct { //nolint:recvcheck //using for validation
	entityID string

	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates an audit trail query. An empty entityID
// returns the whole trail.
func NewGetAuditTrailQuery(entityID string) GetAuditTrailQuery {
	return GetAuditTrailQuery{
		entityID: entityID,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

// EntityID returns the optional entity filter, empty for no filter.
func (q GetAuditTrailQuery) EntityID() string {
	return q.entityID
}

// GetAuditTrailQueryResponse represents one audit entry in the read model.
type GetAuditTrailQueryResponse struct {
	ID         string
	EntityType string
	EntityID   string
	Action     string
	OccurredAt time.Time
	Actor      string
	Details    string
}
