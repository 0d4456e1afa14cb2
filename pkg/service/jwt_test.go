package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "gearguard/pkg/errors"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, zap.NewNop())

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour, zap.NewNop())
	verifier := NewJWTService("secret-b", time.Hour, zap.NewNop())

	token, err := issuer.GenerateToken(42)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, zap.NewNop())

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, zap.NewNop())

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestGetTokenTTL(t *testing.T) {
	ttl := time.Hour * 24 * 7
	svc := NewJWTService("test-secret", ttl, zap.NewNop())
	assert.Equal(t, ttl, svc.GetTokenTTL())
}
