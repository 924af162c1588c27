package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	access, refresh, err := TokenPair(42, false, "secret", time.Minute, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(access, "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, TokenAccess, claims.TokenType)

	claims, err = ParseToken(refresh, "secret")
	require.NoError(t, err)
	assert.Equal(t, TokenRefresh, claims.TokenType)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, TokenAccess, false, "secret", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(1, TokenAccess, false, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}

func TestDemoClaimSurvivesRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, TokenAccess, true, "secret", time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.True(t, claims.IsDemo)
}
