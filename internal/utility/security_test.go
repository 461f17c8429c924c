package utility

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	encoded, err := HashPassword("S3cret!Password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "v1$"))

	assert.True(t, VerifyPassword("S3cret!Password", encoded))
	assert.False(t, VerifyPassword("wrong-password", encoded))
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "mỗi lần hash phải sinh salt mới")
	assert.True(t, VerifyPassword("same-password", first))
	assert.True(t, VerifyPassword("same-password", second))
}

func TestVerifyPassword_MalformedEncoding(t *testing.T) {
	assert.False(t, VerifyPassword("anything", ""))
	assert.False(t, VerifyPassword("anything", "not-an-encoded-hash"))
	assert.False(t, VerifyPassword("anything", "v2$180000$abc$def"))
}

func TestCreateAndVerifyToken(t *testing.T) {
	const secret = "test-secret"

	tokenMap, err := CreateToken(secret, "user-123", "1a2b3c", "42")
	require.NoError(t, err)
	token := tokenMap["token"]
	require.NotEmpty(t, token)

	userID, err := VerifyToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	tokenMap, err := CreateToken("secret-a", "user-123", "1a2b3c", "42")
	require.NoError(t, err)

	_, err = VerifyToken("secret-b", tokenMap["token"])
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := VerifyToken("secret", "not.a.jwt")
	assert.Error(t, err)
}
