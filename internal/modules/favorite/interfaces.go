package favorite

import (
	"context"

	"starcatalog/internal/domain"
)

// FavoriteStore lists only the methods favorite service uses
type FavoriteStore interface {
	Create(ctx context.Context, f *domain.Favorite) error
	FindFirst(ctx context.Context, userID int64, filter domain.FavoriteFilter) (*domain.Favorite, error)
	Delete(ctx context.Context, id int64) error
}
