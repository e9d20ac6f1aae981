package user

import (
	"context"

	"starcatalog/internal/domain"
)

// UserReader lists only the methods user service uses
type UserReader interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
