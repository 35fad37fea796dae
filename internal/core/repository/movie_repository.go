package repository

import (
	"context"

	"github.com/cavanliu/watchlist/internal/core/domain"
)

type MovieRepository interface {
	// List returns all movies in insertion order.
	List(ctx context.Context) ([]*domain.Movie, error)
	FindByID(ctx context.Context, id int64) (*domain.Movie, error)
	Create(ctx context.Context, movie *domain.Movie) error
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
