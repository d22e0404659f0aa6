package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash_ProducesVerifiableDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$2"))
	assert.True(t, h.Verify("s3cret", digest))
}

func TestHash_EmptyPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Hash("")
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestHash_SaltedPerCall(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	// bcrypt embeds a fresh salt, so two hashes of one password differ.
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestVerify_WrongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("right")
	require.NoError(t, err)

	assert.False(t, h.Verify("wrong", digest))
}

func TestVerify_MalformedHashFailsClosed(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("anything", ""))
}

func TestNewHasher_OutOfRangeCostFallsBack(t *testing.T) {
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		h := NewHasher(cost)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	}
}
