package security

import (
	"fmt"
	"time"

	"campground-server/config"
	"campground-server/internal/model"
	"campground-server/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims : полезная нагрузка access токена (sub, iat, exp)
type AccessClaims struct {
	jwt.RegisteredClaims
}

// RefreshClaims : полезная нагрузка refresh токена.
// jti лежит в RegisteredClaims.ID и служит ключом записи в хранилище сессий
type RefreshClaims struct {
	jwt.RegisteredClaims
}

type JWTService struct {
	accessSecret    []byte
	refreshSecret   []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewJWTService разбирает TTL один раз при старте, дальше сервис неизменяем
func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга access_token_ttl: %w", err)
	}

	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга refresh_token_ttl: %w", err)
	}

	return &JWTService{
		accessSecret:    []byte(cfg.AccessSecretKey),
		refreshSecret:   []byte(cfg.RefreshSecretKey),
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}, nil
}

func (service *JWTService) GenerateAccessToken(userUUID string) (string, error) {
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUUID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(service.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "campground-server",
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	accessToken, err := jwtToken.SignedString(service.accessSecret)
	if err != nil {
		return "", util.LogError("ошибка подписи access токена", err)
	}

	return accessToken, nil
}

// GenerateRefreshToken подписывает refresh токен со свежим jti и возвращает
// вместе с ним запись для хранилища сессий
func (service *JWTService) GenerateRefreshToken(userUUID string) (string, *model.RefreshToken, error) {
	jti := uuid.New().String()
	now := time.Now()
	expireAt := now.Add(service.refreshTokenTTL)

	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUUID,
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(expireAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "campground-server",
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	refreshToken, err := jwtToken.SignedString(service.refreshSecret)
	if err != nil {
		return "", nil, util.LogError("ошибка подписи refresh токена", err)
	}

	record := &model.RefreshToken{
		JTI:       jti,
		UserUUID:  userUUID,
		CreatedAt: now,
		ExpireAt:  expireAt,
	}

	return refreshToken, record, nil
}

func (service *JWTService) ValidateAccessToken(jwtTokenStr string) (*AccessClaims, error) {
	var claims = &AccessClaims{}
	if err := service.validate(jwtTokenStr, claims, service.accessSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (service *JWTService) ValidateRefreshToken(jwtTokenStr string) (*RefreshClaims, error) {
	var claims = &RefreshClaims{}
	if err := service.validate(jwtTokenStr, claims, service.refreshSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (service *JWTService) validate(jwtTokenStr string, claims jwt.Claims, secretKey []byte) error {
	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return secretKey, nil
	})

	if err != nil || jwtToken.Valid == false {
		return util.LogError("невалидный токен", err)
	}

	return nil
}
