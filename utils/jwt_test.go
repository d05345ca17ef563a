package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParseToken(t *testing.T) {
	token, err := GenerateToken(7, "admin", "tok-123", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminUserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "tok-123", claims.TokenID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(7, "admin", "tok-123", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(7, "admin", "tok-123", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", "secret")
	assert.Error(t, err)
}
