package security

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt digest of the plaintext. bcrypt salts every
// call, so hashing the same input twice yields different digests.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether the plaintext matches the stored digest.
// A malformed digest fails closed: the answer is false, never an error that
// could be mistaken for a successful match.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
