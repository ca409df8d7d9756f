package user

import (
	"context"
)

type Repository interface {
	FetchByUUID(ctx context.Context, uuid UUID) (*User, error)
	FetchByUsername(ctx context.Context, username string) (*User, error)
	FetchByEmail(ctx context.Context, email string) (*User, error)
	FetchPage(ctx context.Context, page, size int) (Users, int64, error)
	Create(ctx context.Context, req User) (*User, error)
	Update(ctx context.Context, req User) (*User, error)
	Delete(ctx context.Context, uuid UUID) error
}
