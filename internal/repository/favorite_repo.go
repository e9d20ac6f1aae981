package repository

import (
	"context"

	"starcatalog/internal/domain"

	"gorm.io/gorm"
)

// FavoriteRepository хранит избранное. Каждая мутация это одна автокоммитная
// операция, без транзакций между вызовами.
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// joinedFavorites fetches favorites with People and Planet in the same query
// (LEFT JOIN). A reference that does not resolve leaves the nested pointer nil
// once passed through dropUnresolved.
func joinedFavorites(db *gorm.DB) *gorm.DB {
	return db.
		Model(&domain.Favorite{}).
		Joins("People").
		Joins("Planet")
}

func (r *FavoriteRepository) joined(ctx context.Context) *gorm.DB {
	return joinedFavorites(r.db.WithContext(ctx))
}

// favoritesOf loads the favorites of every given user with one joined query,
// grouped by owner and ordered by id.
func favoritesOf(ctx context.Context, db *gorm.DB, userIDs []int64) (map[int64][]domain.Favorite, error) {
	grouped := make(map[int64][]domain.Favorite, len(userIDs))
	if len(userIDs) == 0 {
		return grouped, nil
	}

	var favorites []domain.Favorite
	err := joinedFavorites(db.WithContext(ctx)).
		Where("favorites.user_id IN ?", userIDs).
		Order("favorites.id").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	for i := range favorites {
		dropUnresolved(&favorites[i])
		grouped[favorites[i].UserID] = append(grouped[favorites[i].UserID], favorites[i])
	}
	return grouped, nil
}

func (r *FavoriteRepository) GetByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	var f domain.Favorite
	if err := r.joined(ctx).Where("favorites.id = ?", id).First(&f).Error; err != nil {
		return nil, translate(err)
	}
	dropUnresolved(&f)
	return &f, nil
}

// FindFirst returns the lowest-id favorite of the user matching the filter.
func (r *FavoriteRepository) FindFirst(ctx context.Context, userID int64, filter domain.FavoriteFilter) (*domain.Favorite, error) {
	q := r.joined(ctx).Where("favorites.user_id = ?", userID)
	if filter.PeopleID != nil {
		q = q.Where("favorites.people_id = ?", *filter.PeopleID)
	}
	if filter.PlanetID != nil {
		q = q.Where("favorites.planet_id = ?", *filter.PlanetID)
	}

	var f domain.Favorite
	if err := q.Order("favorites.id").First(&f).Error; err != nil {
		return nil, translate(err)
	}
	dropUnresolved(&f)
	return &f, nil
}

// Create inserts the row and reloads it with its references resolved.
func (r *FavoriteRepository) Create(ctx context.Context, f *domain.Favorite) error {
	if err := r.db.WithContext(ctx).Omit("User", "People", "Planet").Create(f).Error; err != nil {
		return err
	}

	loaded, err := r.GetByID(ctx, f.ID)
	if err != nil {
		return err
	}
	*f = *loaded
	return nil
}

// Delete removes one favorite by primary key. Zero affected rows means a
// concurrent request already removed it.
func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Favorite{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// dropUnresolved clears joined references that matched no row.
func dropUnresolved(f *domain.Favorite) {
	if f.People != nil && f.People.ID == 0 {
		f.People = nil
	}
	if f.Planet != nil && f.Planet.ID == 0 {
		f.Planet = nil
	}
}
