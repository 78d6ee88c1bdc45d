package ports

import (
	"context"

	"campground-server/internal/model"
	"campground-server/internal/security"
)

type SessionRepositoryInterface interface {
	Create(ctx context.Context, record *model.RefreshToken) error
	FindByUserAndJTI(ctx context.Context, userUUID, jti string) (*model.RefreshToken, error)
	DeleteByUserAndJTI(ctx context.Context, userUUID, jti string) (bool, error)
	DeleteAllForUser(ctx context.Context, userUUID string) (int64, error)
}

type JWTServiceInterface interface {
	GenerateAccessToken(userUUID string) (string, error)
	GenerateRefreshToken(userUUID string) (string, *model.RefreshToken, error)
	ValidateAccessToken(tokenString string) (*security.AccessClaims, error)
	ValidateRefreshToken(tokenString string) (*security.RefreshClaims, error)
}
