package repository

import (
	"context"

	"starcatalog/internal/domain"

	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// List returns every person in storage order.
func (r *PersonRepository) List(ctx context.Context) ([]domain.Person, error) {
	people := []domain.Person{}
	if err := r.db.WithContext(ctx).Order("id").Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	var p domain.Person
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}
