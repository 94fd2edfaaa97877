package auth

import (
	"testing"
	"time"

	"github.com/dovepeak/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "dovepeak-test",
		MaxRefreshCount:        3,
	})
}

func testInput() GenerateTokenInput {
	return GenerateTokenInput{
		UserID:      uuid.New(),
		Email:       "admin@dovepeak.example",
		Realm:       RealmAdmin,
		Permissions: []string{"all"},
	}
}

func TestGenerateTokenPair(t *testing.T) {
	service := newTestService(t)
	input := testInput()

	pair, err := service.GenerateTokenPair(input)
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))
}

func TestValidateAccessToken(t *testing.T) {
	service := newTestService(t)
	input := testInput()

	pair, err := service.GenerateTokenPair(input)
	require.NoError(t, err)

	claims, err := service.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, input.UserID.String(), claims.UserID)
	assert.Equal(t, input.Email, claims.Email)
	assert.Equal(t, RealmAdmin, claims.Realm)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, input.UserID, parsed)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	service := newTestService(t)

	pair, err := service.GenerateTokenPair(testInput())
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	_, err = service.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	service := newTestService(t)

	_, err := service.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters-long",
		AccessTokenExpiration:  -time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "dovepeak-test",
		MaxRefreshCount:        3,
	})

	pair, err := service.GenerateTokenPair(testInput())
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	service := newTestService(t)
	other := NewJWTService(config.JWTConfig{
		Secret:                 "a-completely-different-signing-secret!!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "dovepeak-test",
		MaxRefreshCount:        3,
	})

	pair, err := service.GenerateTokenPair(testInput())
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenPair(t *testing.T) {
	service := newTestService(t)
	input := testInput()

	pair, err := service.GenerateTokenPair(input)
	require.NoError(t, err)

	refreshed, err := service.RefreshTokenPair(pair.RefreshToken, input.Email, []string{"reports"})
	require.NoError(t, err)

	claims, err := service.ValidateAccessToken(refreshed.AccessToken)
	require.NoError(t, err)

	// The new access token reflects the permissions supplied at refresh time
	assert.Equal(t, []string{"reports"}, claims.Permissions)
	assert.Equal(t, input.UserID.String(), claims.UserID)

	refreshClaims, err := service.ValidateRefreshToken(refreshed.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshClaims.RefreshCount)
}

func TestRefreshTokenPair_MaxRefreshExceeded(t *testing.T) {
	service := newTestService(t)
	input := testInput()

	pair, err := service.GenerateTokenPair(input)
	require.NoError(t, err)

	// The configured cap is 3; the fourth refresh must fail
	for i := 0; i < 3; i++ {
		pair, err = service.RefreshTokenPair(pair.RefreshToken, input.Email, input.Permissions)
		require.NoError(t, err)
	}

	_, err = service.RefreshTokenPair(pair.RefreshToken, input.Email, input.Permissions)
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
}

func TestClaims_HasPermission(t *testing.T) {
	claims := &Claims{Permissions: []string{"reports", "billing"}}
	assert.True(t, claims.HasPermission("reports"))
	assert.False(t, claims.HasPermission("settings"))

	wildcard := &Claims{Permissions: []string{"all"}}
	assert.True(t, wildcard.HasPermission("settings"))
}
