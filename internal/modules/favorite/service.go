package favorite

import (
	"context"
	"fmt"
	"log"

	"starcatalog/internal/domain"
)

// Service добавляет и удаляет избранное текущего пользователя.
// Существование персонажа или планеты не проверяется.
type Service struct {
	store FavoriteStore
}

func NewService(store FavoriteStore) *Service {
	return &Service{store: store}
}

func (s *Service) AddPerson(ctx context.Context, userID, personID int64) (*domain.Favorite, error) {
	return s.add(ctx, &domain.Favorite{UserID: userID, PeopleID: &personID})
}

func (s *Service) AddPlanet(ctx context.Context, userID, planetID int64) (*domain.Favorite, error) {
	return s.add(ctx, &domain.Favorite{UserID: userID, PlanetID: &planetID})
}

func (s *Service) add(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error) {
	if err := s.store.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	log.Printf("favorite_created id=%d user_id=%d kind=%s", f.ID, f.UserID, f.Kind())
	return f, nil
}

func (s *Service) RemovePerson(ctx context.Context, userID, personID int64) error {
	return s.remove(ctx, userID, domain.FavoriteFilter{PeopleID: &personID})
}

func (s *Service) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	return s.remove(ctx, userID, domain.FavoriteFilter{PlanetID: &planetID})
}

// remove looks the row up and deletes it by id: two statements, no transaction.
// A concurrent delete between them surfaces as not found.
func (s *Service) remove(ctx context.Context, userID int64, filter domain.FavoriteFilter) error {
	f, err := s.store.FindFirst(ctx, userID, filter)
	if err != nil {
		return fmt.Errorf("find favorite: %w", err)
	}
	if err := s.store.Delete(ctx, f.ID); err != nil {
		return fmt.Errorf("delete favorite %d: %w", f.ID, err)
	}
	log.Printf("favorite_removed id=%d user_id=%d kind=%s", f.ID, f.UserID, f.Kind())
	return nil
}
