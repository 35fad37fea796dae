package repository

import (
	"context"

	"github.com/cavanliu/watchlist/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// First returns the sole admin row, or ErrNotFound when the table is empty.
	First(ctx context.Context) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Count(ctx context.Context) (int64, error)
}
