package services

import (
	"crypto/rand"
	"fmt"
)

// tokenAlphabet is the base32 alphabet voucher tokens are drawn from. Its
// length divides 256 evenly, so mapping random bytes by modulo introduces
// no bias.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// tokenLength gives 100 bits of entropy per token, enough to make
// guessing a live voucher impractical within its 48-hour validity.
const tokenLength = 20

// SecureTokenSource is a domain service producing voucher bearer tokens
// from a cryptographically secure generator. Tokens are uppercase base32
// strings, readable over the phone yet unguessable.
type SecureTokenSource struct{}

// NewSecureTokenSource creates a new SecureTokenSource.
func NewSecureTokenSource() SecureTokenSource {
	return SecureTokenSource{}
}

// NewToken returns a fresh opaque token. Fails only if the system's
// entropy source is unavailable.
func (s SecureTokenSource) NewToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	token := make([]byte, tokenLength)
	for i, b := range buf {
		token[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(token), nil
}
