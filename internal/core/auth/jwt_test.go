package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *User {
	contactID := "contact-1"
	return &User{
		ID:        "user-1",
		Role:      RolePortal,
		ContactID: &contactID,
	}
}

func TestTokenPairRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret")
	pair, err := m.GenerateTokenPair(testUser())
	require.NoError(t, err)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	claims, err := m.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, RolePortal, claims.Role)
	require.NotNil(t, claims.ContactID)
	assert.Equal(t, "contact-1", *claims.ContactID)

	_, err = m.ParseRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestTokenTypeIsEnforced(t *testing.T) {
	m := NewJWTManager("test-secret")
	pair, err := m.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = m.ParseAccessToken(pair.RefreshToken)
	assert.Error(t, err, "refresh token is not an access token")

	_, err = m.ParseRefreshToken(pair.AccessToken)
	assert.Error(t, err)

	reset, err := m.GenerateResetToken(testUser())
	require.NoError(t, err)
	_, err = m.ParseAccessToken(reset)
	assert.Error(t, err)
	_, err = m.ParseResetToken(reset)
	assert.NoError(t, err)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	pair, err := NewJWTManager("secret-a").GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b").ParseAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
