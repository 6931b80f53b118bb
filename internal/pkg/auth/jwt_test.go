package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/hostelmate/internal/app/models"
)

func newTestJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "hostelmate-test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Email:    "student@institute.edu",
		RoleType: models.RoleStudent,
	}
}

func TestGenerateTokenPairAndValidate(t *testing.T) {
	svc := newTestJWTService(1 * time.Hour)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, int((720 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "student@institute.edu", claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.RoleType)
	assert.Equal(t, "hostelmate-test", claims.Issuer)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestJWTService(-1 * time.Minute)

	accessToken, _, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestJWTService(1 * time.Hour)
	accessToken, _, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  1 * time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "hostelmate-test",
	})

	_, err = other.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsEmptyToken(t *testing.T) {
	svc := newTestJWTService(1 * time.Hour)

	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestJWTService(1 * time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	// A raw token without the prefix is accepted as-is
	token, err = ExtractBearerToken("abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	svc := newTestJWTService(1 * time.Hour)

	_, first, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	_, second, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
