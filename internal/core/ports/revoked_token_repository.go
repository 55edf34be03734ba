package ports

import (
	"context"
)

// RevokedTokenRepository defines the persistence contract for the voucher
// revocation list. Only SHA-256 hashes of superseded tokens are stored,
// never the plaintext, so the list can be kept indefinitely.
type RevokedTokenRepository interface {
	// Add records a token hash as revoked. Adding the same hash twice is
	// not an error.
	Add(ctx context.Context, tokenHash string) error
}
