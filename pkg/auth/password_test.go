package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("testpassword123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "testpassword123", hashed)

	// bcrypt salts: same input, different hashes.
	hashed2, err := HashPassword("testpassword123")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, hashed2)
}

func TestCheckPassword(t *testing.T) {
	hashed, err := HashPassword("testpassword123")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hashed, "testpassword123"))
	assert.False(t, CheckPassword(hashed, "wrongpassword"))
	assert.False(t, CheckPassword(hashed, ""))
}
