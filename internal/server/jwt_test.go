package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-matcher/internal/config"
)

func setupTestJWTService(t *testing.T, expirationHours int) *JWTService {
	t.Helper()
	cfg, err := config.NewJWTConfig(testSecret, expirationHours, 0)
	require.NoError(t, err)
	return NewJWTService(cfg)
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := setupTestJWTService(t, 24)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3, "JWT should have 3 parts separated by dots")

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_TokenPair(t *testing.T) {
	service := setupTestJWTService(t, 1)
	userID := uuid.New()

	access, refresh, err := service.GenerateTokenPair(userID)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := service.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)

	// Refresh tokens outlive access tokens.
	accessClaims, err := service.ValidateToken(access)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.After(accessClaims.ExpiresAt.Time))
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	service := setupTestJWTService(t, 1)
	access, refresh, err := service.GenerateTokenPair(uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateToken(refresh)
	var unauthorized *ErrUnauthorized
	assert.ErrorAs(t, err, &unauthorized)

	_, err = service.ValidateRefreshToken(access)
	assert.ErrorAs(t, err, &unauthorized)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := setupTestJWTService(t, 1)
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	service.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	service := setupTestJWTService(t, 1)
	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	other, err := config.NewJWTConfig("a-different-secret-of-sufficient-length", 1, 0)
	require.NoError(t, err)
	foreign, err := NewJWTService(other).GenerateToken(uuid.New())
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.New(), TokenType: TokenTypeAccess})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not.a.valid.jwt.token"},
		{"tampered", token[:len(token)-2] + "xx"},
		{"wrong secret", foreign},
		{"alg none", unsigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_RejectsNilSubject(t *testing.T) {
	service := setupTestJWTService(t, 1)
	token, err := service.sign(uuid.Nil, TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorContains(t, err, "no subject")
}

func TestAsTokenValidator(t *testing.T) {
	service := setupTestJWTService(t, 1)
	userID := uuid.New()
	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	got, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got.GetUserID())
}
