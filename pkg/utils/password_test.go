package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	// Same input must not produce the same hash (salted).
	hash2, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "secret1"))
}

func TestGenerateResetToken(t *testing.T) {
	t.Parallel()

	token, err := GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, token, 40)

	token2, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)
}
