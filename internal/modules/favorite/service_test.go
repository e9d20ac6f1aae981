package favorite

import (
	"context"
	"testing"

	"starcatalog/internal/domain"
	"starcatalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFavoriteStore struct {
	mock.Mock
}

func (m *MockFavoriteStore) Create(ctx context.Context, f *domain.Favorite) error {
	args := m.Called(ctx, f)
	if f != nil {
		f.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockFavoriteStore) FindFirst(ctx context.Context, userID int64, filter domain.FavoriteFilter) (*domain.Favorite, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_AddPlanet(t *testing.T) {
	store := new(MockFavoriteStore)
	service := NewService(store)
	ctx := context.Background()

	store.On("Create", ctx, mock.MatchedBy(func(f *domain.Favorite) bool {
		return f.UserID == 1 && f.PlanetID != nil && *f.PlanetID == 3 && f.PeopleID == nil
	})).Return(nil)

	f, err := service.AddPlanet(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(999), f.ID)
	assert.Equal(t, domain.FavoritePlanet, f.Kind())
	store.AssertExpectations(t)
}

func TestService_AddPerson(t *testing.T) {
	store := new(MockFavoriteStore)
	service := NewService(store)
	ctx := context.Background()

	store.On("Create", ctx, mock.AnythingOfType("*domain.Favorite")).Return(nil)

	f, err := service.AddPerson(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.FavoritePerson, f.Kind())
	assert.Equal(t, int64(4), *f.PeopleID)
}

func TestService_RemovePerson_DeletesFirstMatch(t *testing.T) {
	store := new(MockFavoriteStore)
	service := NewService(store)
	ctx := context.Background()

	personID := int64(5)
	store.On("FindFirst", ctx, int64(1), domain.FavoriteFilter{PeopleID: &personID}).
		Return(&domain.Favorite{ID: 12, UserID: 1, PeopleID: &personID}, nil)
	store.On("Delete", ctx, int64(12)).Return(nil)

	require.NoError(t, service.RemovePerson(ctx, 1, 5))
	store.AssertExpectations(t)
}

func TestService_RemovePlanet_NotFound(t *testing.T) {
	store := new(MockFavoriteStore)
	service := NewService(store)
	ctx := context.Background()

	store.On("FindFirst", ctx, int64(1), mock.Anything).Return(nil, repository.ErrNotFound)

	err := service.RemovePlanet(ctx, 1, 8)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_RemovePlanet_LostRace(t *testing.T) {
	store := new(MockFavoriteStore)
	service := NewService(store)
	ctx := context.Background()

	store.On("FindFirst", ctx, int64(1), mock.Anything).Return(&domain.Favorite{ID: 4}, nil)
	store.On("Delete", ctx, int64(4)).Return(repository.ErrNotFound)

	err := service.RemovePlanet(ctx, 1, 8)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestToFavoriteResponse_NullReferences(t *testing.T) {
	planetID := int64(999999)
	resp := ToFavoriteResponse(&domain.Favorite{ID: 1, UserID: 1, PlanetID: &planetID})

	assert.Nil(t, resp.People)
	assert.Nil(t, resp.Planet)
}
