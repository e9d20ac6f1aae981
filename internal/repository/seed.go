package repository

import (
	"context"

	"starcatalog/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder loads reference data. Rows whose primary key already exists are skipped.
type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

func (s *Seeder) insert(ctx context.Context, rows any) (int64, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rows)
	return result.RowsAffected, result.Error
}

func (s *Seeder) SeedUser(ctx context.Context, u *domain.User) (int64, error) {
	return s.insert(ctx, u)
}

func (s *Seeder) SeedPeople(ctx context.Context, people []domain.Person) (int64, error) {
	if len(people) == 0 {
		return 0, nil
	}
	return s.insert(ctx, &people)
}

func (s *Seeder) SeedPlanets(ctx context.Context, planets []domain.Planet) (int64, error) {
	if len(planets) == 0 {
		return 0, nil
	}
	return s.insert(ctx, &planets)
}

// SyncSequences moves PostgreSQL id sequences past explicitly seeded ids.
// SQLite derives the next rowid from the table and needs nothing.
func (s *Seeder) SyncSequences(ctx context.Context) error {
	if s.db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"users", "people", "planets", "favorites"} {
		err := s.db.WithContext(ctx).Exec(
			"SELECT setval(pg_get_serial_sequence(?, 'id'), COALESCE((SELECT MAX(id) FROM "+table+"), 0) + 1, false)",
			table,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}
