package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret123", hash)

	assert.True(t, CheckPassword(hash, "Secret123"))
	assert.False(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordInvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "Secret123"))
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestGenerateNumericCodeDefaultsLength(t *testing.T) {
	code, err := GenerateNumericCode(0)
	require.NoError(t, err)
	assert.Len(t, code, 6)
}
