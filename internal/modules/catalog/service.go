package catalog

import (
	"context"
	"fmt"

	"starcatalog/internal/domain"
)

type Service struct {
	people  PersonReader
	planets PlanetReader
}

func NewService(people PersonReader, planets PlanetReader) *Service {
	return &Service{people: people, planets: planets}
}

/* ---------- PEOPLE ---------- */

func (s *Service) ListPeople(ctx context.Context) ([]domain.Person, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return people, nil
}

func (s *Service) GetPerson(ctx context.Context, id int64) (*domain.Person, error) {
	p, err := s.people.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get person %d: %w", id, err)
	}
	return p, nil
}

/* ---------- PLANETS ---------- */

func (s *Service) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	planets, err := s.planets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	return planets, nil
}

func (s *Service) GetPlanet(ctx context.Context, id int64) (*domain.Planet, error) {
	p, err := s.planets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get planet %d: %w", id, err)
	}
	return p, nil
}
