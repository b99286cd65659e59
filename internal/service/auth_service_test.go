package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zhufei/sports-backend/internal/config"
)

func testAuthService(expiry time.Duration) *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  expiry,
		BcryptCost: bcrypt.MinCost,
	})
}

func TestPasswordHashRoundTrip(t *testing.T) {
	s := testAuthService(time.Hour)

	hash, err := s.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, s.CheckPassword(hash, "secret123"))
	assert.ErrorIs(t, s.CheckPassword(hash, "wrong-password"), ErrInvalidCredentials)
	assert.ErrorIs(t, s.CheckPassword("not-a-hash", "secret123"), ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	s := testAuthService(time.Hour)

	token, err := s.GenerateToken(7, "zhufei", "助飞管理员")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.AdminID)
	assert.Equal(t, "zhufei", claims.Username)
	assert.Equal(t, "助飞管理员", claims.Name)
	assert.Equal(t, "7", claims.Subject)
}

func TestTamperedTokenRejected(t *testing.T) {
	s := testAuthService(time.Hour)

	token, err := s.GenerateToken(1, "admin", "Admin")
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = s.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	s := testAuthService(-time.Minute)

	token, err := s.GenerateToken(1, "admin", "Admin")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenFromDifferentSecretRejected(t *testing.T) {
	issuer := testAuthService(time.Hour)
	verifier := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})

	token, err := issuer.GenerateToken(1, "admin", "Admin")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
