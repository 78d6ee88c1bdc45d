package ports

import (
	"context"

	"campground-server/internal/model"
)

type AuthenticationService interface {
	Signup(ctx context.Context, email, password, firstName, lastName string) (*model.TokensPair, *model.User, error)
	Login(ctx context.Context, email, password string) (*model.TokensPair, *model.User, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	GetSession(ctx context.Context, userUUID string) (*model.User, error)
}
