package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()
	roles := []string{"client", "admin"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TokensAreUniquePerIssue(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	_, first, err := jwtService.GenerateTokens(userID, nil)
	require.NoError(t, err)
	_, second, err := jwtService.GenerateTokens(userID, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, jwtService.HashToken(first), jwtService.HashToken(second))
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	jwtService := newTestJWTService(t)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), []string{"client"})
	require.NoError(t, err)

	// Each type is signed with its own secret, so swapping fails at the signature.
	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_TypeClaimIsChecked(t *testing.T) {
	jwtService := newTestJWTService(t)

	// Signed with the access secret but labelled as a refresh token.
	forged, err := jwtService.sign(uuid.New(), nil, service.TokenTypeRefresh, time.Minute, jwtService.accessSecret)
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(forged)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenTypeMismatch))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	issuedAt := time.Now().Add(-time.Hour)
	jwtService.now = func() time.Time { return issuedAt }
	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	jwtService.now = time.Now
	_, err = jwtService.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	jwtService := newTestJWTService(t)

	assert.Equal(t, jwtService.HashToken("abc"), jwtService.HashToken("abc"))
	assert.Len(t, jwtService.HashToken("abc"), 64)
	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
}
