package security_test

import (
	"testing"
	"time"

	"campground-server/config"
	"campground-server/internal/security"

	"github.com/stretchr/testify/assert"
)

func newTestJWTService(t *testing.T, accessTTL, refreshTTL string) *security.JWTService {
	t.Helper()

	service, err := security.NewJWTService(&config.JWTConfig{
		AccessSecretKey:  "access-secret",
		RefreshSecretKey: "refresh-secret",
		AccessTokenTTL:   accessTTL,
		RefreshTokenTTL:  refreshTTL,
	})
	assert.NoError(t, err)
	return service
}

func TestNewJWTService_BadTTL(t *testing.T) {
	_, err := security.NewJWTService(&config.JWTConfig{
		AccessSecretKey:  "a",
		RefreshSecretKey: "r",
		AccessTokenTTL:   "пятнадцать минут",
		RefreshTokenTTL:  "168h",
	})
	assert.Error(t, err)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	service := newTestJWTService(t, "15m", "168h")

	token, err := service.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	claims, err := service.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	service := newTestJWTService(t, "15m", "168h")

	token, record, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)
	assert.Equal(t, "user-123", record.UserUUID)
	assert.NotEmpty(t, record.JTI)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), record.ExpireAt, time.Minute)

	claims, err := service.ValidateRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, record.JTI, claims.ID)
}

func TestRefreshToken_UniqueJTI(t *testing.T) {
	service := newTestJWTService(t, "15m", "168h")

	_, first, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)
	_, second, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	assert.NotEqual(t, first.JTI, second.JTI)
}

func TestValidate_ExpiredToken(t *testing.T) {
	// отрицательный TTL подписывает токен с exp в прошлом
	service := newTestJWTService(t, "-1s", "-1s")

	accessToken, err := service.GenerateAccessToken("user-123")
	assert.NoError(t, err)
	_, err = service.ValidateAccessToken(accessToken)
	assert.Error(t, err)

	refreshToken, _, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)
	_, err = service.ValidateRefreshToken(refreshToken)
	assert.Error(t, err)
}

func TestValidate_WrongSecret(t *testing.T) {
	service := newTestJWTService(t, "15m", "168h")

	// access токен не должен проходить проверку refresh секретом и наоборот
	accessToken, err := service.GenerateAccessToken("user-123")
	assert.NoError(t, err)
	_, err = service.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	refreshToken, _, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)
	_, err = service.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestValidate_MalformedToken(t *testing.T) {
	service := newTestJWTService(t, "15m", "168h")

	_, err := service.ValidateAccessToken("не.jwt.вовсе")
	assert.Error(t, err)

	_, err = service.ValidateRefreshToken("")
	assert.Error(t, err)
}
