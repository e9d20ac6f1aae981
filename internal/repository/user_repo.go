package repository

import (
	"context"

	"starcatalog/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	if err := r.attachFavorites(ctx, users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	users := make([]domain.User, 1)
	if err := r.db.WithContext(ctx).First(&users[0], id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.attachFavorites(ctx, users); err != nil {
		return nil, err
	}
	return &users[0], nil
}

// attachFavorites заполняет избранное пользователей одним запросом с JOIN
// на персонажей и планеты.
func (r *UserRepository) attachFavorites(ctx context.Context, users []domain.User) error {
	ids := make([]int64, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}

	grouped, err := favoritesOf(ctx, r.db, ids)
	if err != nil {
		return err
	}
	for i := range users {
		users[i].Favorites = grouped[users[i].ID]
		if users[i].Favorites == nil {
			users[i].Favorites = []domain.Favorite{}
		}
	}
	return nil
}
