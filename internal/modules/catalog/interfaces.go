package catalog

import (
	"context"

	"starcatalog/internal/domain"
)

// PersonReader lists only the methods catalog service uses
type PersonReader interface {
	List(ctx context.Context) ([]domain.Person, error)
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
}

// PlanetReader lists only the methods catalog service uses
type PlanetReader interface {
	List(ctx context.Context) ([]domain.Planet, error)
	GetByID(ctx context.Context, id int64) (*domain.Planet, error)
}
