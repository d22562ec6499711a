package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, h.Verify("s3cret-password", hash))
	assert.False(t, h.Verify("wrong-password", hash))
}

func TestPasswordHasher_ExactBytesMatter(t *testing.T) {
	h := NewPasswordHasher(4)

	hash, err := h.Hash("Password")
	require.NoError(t, err)

	assert.False(t, h.Verify("password", hash))
	assert.False(t, h.Verify("Password ", hash))
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPasswordHasher(4)

	h1, err := h.Hash("same-input")
	require.NoError(t, err)
	h2, err := h.Hash("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, h.Verify("same-input", h1))
	assert.True(t, h.Verify("same-input", h2))
}

func TestPasswordHasher_MalformedHashVerifiesFalse(t *testing.T) {
	h := NewPasswordHasher(4)

	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("anything", ""))
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of failing
	// every Hash call.
	h := NewPasswordHasher(-1)

	hash, err := h.Hash("pw")
	require.NoError(t, err)
	assert.True(t, h.Verify("pw", hash))
}
