package auditrepo

import (
	"context"

	"dispatchops/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM. The trail is
// append-only; there are no update or delete operations.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append persists a new audit entry.
func (r *GormAuditRepository) Append(ctx context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll retrieves the whole trail in insertion order.
func (r *GormAuditRepository) GetAll(ctx context.Context) ([]audit.Entry, error) {
	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByEntity retrieves one entity's entries in insertion order.
func (r *GormAuditRepository) GetByEntity(ctx context.Context, entityID string) ([]audit.Entry, error) {
	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos, "entity_id = ?", entityID).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []EntryDTO) ([]audit.Entry, error) {
	entries := make([]audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
