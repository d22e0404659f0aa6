// Package token derives the stateless remember-me token presented by
// returning clients in lieu of interactive login.
//
// The token is a keyed MAC over the user's stable identity and current
// password hash: HMAC-SHA256(secret, email || passwordHash), hex encoded.
// Because the password hash is part of the message, every token is implicitly
// revoked the moment the password changes.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Deriver computes remember tokens with a process-wide secret key configured
// at startup. The key is read-only after construction, so a Deriver is safe
// for concurrent use.
//
// HMAC instances are pooled to avoid re-allocating hash state on every
// derivation; token lookup scans derive one token per known user, which makes
// this a hot path.
type Deriver struct {
	pool sync.Pool
}

// NewDeriver constructs a Deriver keyed with secret.
func NewDeriver(secret string) *Deriver {
	key := []byte(secret)
	return &Deriver{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Derive returns the remember token for the given identity and password hash.
// Deterministic: identical inputs always yield the identical token, and a
// change to either input changes the token.
func (d *Deriver) Derive(email, passwordHash string) string {
	h := d.pool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(email))
	h.Write([]byte(passwordHash))
	sum := h.Sum(nil)

	h.Reset()
	d.pool.Put(h)

	return hex.EncodeToString(sum)
}

// Equal compares two tokens in constant time.
func Equal(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
