package catalog

import (
	"context"
	"errors"
	"testing"

	"starcatalog/internal/domain"
	"starcatalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPersonReader struct {
	mock.Mock
}

func (m *MockPersonReader) List(ctx context.Context) ([]domain.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}

func (m *MockPersonReader) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

type MockPlanetReader struct {
	mock.Mock
}

func (m *MockPlanetReader) List(ctx context.Context) ([]domain.Planet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Planet), args.Error(1)
}

func (m *MockPlanetReader) GetByID(ctx context.Context, id int64) (*domain.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Planet), args.Error(1)
}

func TestService_GetPerson(t *testing.T) {
	people := new(MockPersonReader)
	service := NewService(people, new(MockPlanetReader))
	ctx := context.Background()

	people.On("GetByID", ctx, int64(1)).Return(&domain.Person{ID: 1, Name: "Luke Skywalker"}, nil)
	people.On("GetByID", ctx, int64(2)).Return(nil, repository.ErrNotFound)

	p, err := service.GetPerson(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Luke Skywalker", p.Name)

	_, err = service.GetPerson(ctx, 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	people.AssertExpectations(t)
}

func TestService_ListPlanets_PropagatesError(t *testing.T) {
	planets := new(MockPlanetReader)
	service := NewService(new(MockPersonReader), planets)
	ctx := context.Background()

	boom := errors.New("connection reset")
	planets.On("List", ctx).Return(nil, boom)

	_, err := service.ListPlanets(ctx)
	assert.ErrorIs(t, err, boom)
	planets.AssertExpectations(t)
}

func TestToPersonResponse_KeepsNulls(t *testing.T) {
	gender := "female"
	resp := ToPersonResponse(&domain.Person{ID: 2, Name: "Leia Organa", Gender: &gender})

	assert.Equal(t, int64(2), resp.ID)
	assert.Equal(t, "female", *resp.Gender)
	assert.Nil(t, resp.BirthYear)
	assert.Nil(t, ToPersonResponse(nil))
	assert.Nil(t, ToPlanetResponse(nil))
}
