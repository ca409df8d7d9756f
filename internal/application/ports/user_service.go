package ports

import (
	"context"

	"sportmeet-api/internal/domain/user"
)

type UserService interface {
	Register(ctx context.Context, u user.User, password string) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindPage(ctx context.Context, page, size int) (user.Users, int64, error)
	Update(ctx context.Context, username string, up user.Update) (*user.User, error)
	DeleteSelf(ctx context.Context, username string) error
}
