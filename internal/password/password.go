// Package password wraps bcrypt hashing and verification of account
// passwords. The salt is embedded in the hash output, so verification needs
// no side-channel storage.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by Hash when given an empty plaintext.
var ErrEmptyPassword = errors.New("password must not be empty")

// Hasher produces and verifies bcrypt password hashes with a fixed cost.
// The zero cost selects bcrypt's default. Safe for concurrent use.
type Hasher struct {
	cost int
}

// NewHasher constructs a Hasher. cost values outside bcrypt's supported range
// fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt digest of plaintext. Deliberately expensive.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// Verify reports whether plaintext matches the stored bcrypt hash.
// It fails closed: a malformed hash yields false, never a panic or an error
// the caller has to distinguish from a wrong password.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
