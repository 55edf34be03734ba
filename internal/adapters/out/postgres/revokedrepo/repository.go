package revokedrepo

import (
	"context"
	"time"

	"dispatchops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRevokedTokenRepository implements RevokedTokenRepository using GORM.
type GormRevokedTokenRepository struct {
	db *gorm.DB
}

// NewGormRevokedTokenRepository creates a new GORM revoked token repository.
func NewGormRevokedTokenRepository(db *gorm.DB) *GormRevokedTokenRepository {
	return &GormRevokedTokenRepository{db: db}
}

// Add records a token hash as revoked. Adding a hash twice is not an error.
func (r *GormRevokedTokenRepository) Add(ctx context.Context, tokenHash string) error {
	if tokenHash == "" {
		return errs.NewValueIsRequiredError("tokenHash")
	}

	dto := RevokedTokenDTO{
		TokenHash: tokenHash,
		RevokedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// Contains reports whether the given token hash has been revoked.
func (r *GormRevokedTokenRepository) Contains(ctx context.Context, tokenHash string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RevokedTokenDTO{}).
		Where("token_hash = ?", tokenHash).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
