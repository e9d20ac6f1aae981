package user

import (
	"context"
	"errors"
	"fmt"

	"starcatalog/internal/domain"
	"starcatalog/internal/repository"
)

// ErrCurrentUserMissing means the identity attached to the request has no
// users row. It is a server-side inconsistency, not a client not-found.
var ErrCurrentUserMissing = errors.New("current user does not exist")

type Service struct {
	users UserReader
}

func NewService(users UserReader) *Service {
	return &Service{users: users}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Favorites loads the user and returns the favorites owned through it.
func (s *Service) Favorites(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: id=%d", ErrCurrentUserMissing, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	if u.Favorites == nil {
		return []domain.Favorite{}, nil
	}
	return u.Favorites, nil
}
