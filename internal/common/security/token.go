package security

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// NewOneTimeToken generates a random single-use token. The raw value is
// emailed to the user; only the hash is ever persisted, so the store alone
// cannot be used to forge acceptance.
func NewOneTimeToken() (raw, hash string) {
	raw = uuid.NewString()
	return raw, HashToken(raw)
}

// HashToken returns the hex SHA-256 digest under which a one-time token is
// stored and later looked up.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
