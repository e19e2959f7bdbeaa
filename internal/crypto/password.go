// Package crypto holds the credential-hashing primitive used by the auth
// service. Hashing is one-way (bcrypt with per-hash salt); neither the
// plaintext nor the hash ever leaves the service boundary.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes plaintext passwords at registration time and verifies
// candidate passwords at login time.
type PasswordHasher interface {
	// Hash derives an opaque, salted hash from plaintext. A failure of the
	// hashing primitive is fatal to the request and must not be retried.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored hash.
	Verify(plaintext string, hash string) bool
}

// bcryptHasher is the production implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with a fixed work factor
// of bcrypt.DefaultCost (10).
func NewPasswordHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (b *bcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (b *bcryptHasher) Verify(plaintext string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
