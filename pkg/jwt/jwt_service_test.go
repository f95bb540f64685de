package jwt

import (
	"testing"
	"time"

	"foodgram/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret", time.Hour)

	token, err := svc.GenerateTokenUser("4f7a2c4e-0000-4000-8000-000000000001", domain.RoleUser)
	require.NoError(t, err)

	userID, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "4f7a2c4e-0000-4000-8000-000000000001", userID)
	assert.Equal(t, domain.RoleUser, role)

	claims, err := svc.GetClaims(token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "FOODGRAM", claims.Issuer)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret", -time.Minute)

	token, err := svc.GenerateTokenUser("user", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTServiceWithSecret("one", time.Hour).GenerateTokenUser("user", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = NewJWTServiceWithSecret("two", time.Hour).GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
