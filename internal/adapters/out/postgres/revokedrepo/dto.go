package revokedrepo

import "time"

// RevokedTokenDTO is a database representation of a revoked voucher token.
// Only the SHA-256 hash is stored, never the token itself.
type RevokedTokenDTO struct {
	TokenHash string    `gorm:"type:varchar(64);primaryKey"`
	RevokedAt time.Time `gorm:"not null"`
}

func (RevokedTokenDTO) TableName() string {
	return "revoked_tokens"
}
