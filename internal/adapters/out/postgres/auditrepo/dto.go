// Package auditrepo provides persistence for the append-only audit trail.
package auditrepo

import (
	"time"

	"dispatchops/internal/core/domain/model/audit"
	"dispatchops/internal/core/domain/model/kernel"
)

// EntryDTO represents the database structure for persisting audit entries.
// Seq gives the trail a stable insertion order independent of timestamps.
type EntryDTO struct {
	Seq        uint `gorm:"primaryKey;autoIncrement"`
	ID         string
	EntityType string `gorm:"type:varchar(16);index"`
	EntityID   string `gorm:"type:varchar(64);index"`
	Action     string `gorm:"type:varchar(32)"`
	OccurredAt time.Time
	Actor      string
	Details    string
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry audit.Entry) EntryDTO {
	return EntryDTO{
		ID:         entry.ID(),
		EntityType: entry.EntityType().String(),
		EntityID:   entry.EntityID(),
		Action:     entry.Action().String(),
		OccurredAt: entry.OccurredAt(),
		Actor:      entry.Actor().String(),
		Details:    entry.Details(),
	}
}

// toDomain converts a database DTO to an audit entry.
func toDomain(dto EntryDTO) (audit.Entry, error) {
	entityType, err := audit.EntityTypeFromString(dto.EntityType)
	if err != nil {
		return audit.Entry{}, err
	}
	action, err := audit.ActionFromString(dto.Action)
	if err != nil {
		return audit.Entry{}, err
	}
	actor, err := kernel.ActorIDFromString(dto.Actor)
	if err != nil {
		return audit.Entry{}, err
	}

	return audit.RestoreEntry(dto.ID, entityType, dto.EntityID, action, dto.OccurredAt, actor, dto.Details)
}
