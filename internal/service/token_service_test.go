package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.GenerateToken("ana@example.com", "individual")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email())
	assert.Equal(t, "individual", claims.Role)
}

func TestTokenServiceRejectsEmptyEmail(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	_, err := svc.GenerateToken("", "individual")
	require.Error(t, err)
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).GenerateToken("ana@example.com", "individual")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).ValidateToken(token)
	require.Error(t, err)
}

func TestTokenServiceRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Nanosecond)
	// Zero TTL falls back to an hour, so use the smallest positive window.
	token, err := svc.GenerateToken("ana@example.com", "individual")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}
