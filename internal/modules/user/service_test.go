package user

import (
	"context"
	"testing"

	"starcatalog/internal/domain"
	"starcatalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestService_Favorites(t *testing.T) {
	users := new(MockUserReader)
	service := NewService(users)
	ctx := context.Background()

	planetID := int64(2)
	users.On("GetByID", ctx, int64(1)).Return(&domain.User{
		ID:        1,
		Username:  "luke",
		Favorites: []domain.Favorite{{ID: 10, UserID: 1, PlanetID: &planetID}},
	}, nil)

	favorites, err := service.Favorites(ctx, 1)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, int64(10), favorites[0].ID)
}

func TestService_Favorites_EmptyIsNotNil(t *testing.T) {
	users := new(MockUserReader)
	service := NewService(users)
	ctx := context.Background()

	users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)

	favorites, err := service.Favorites(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func TestService_Favorites_MissingUser(t *testing.T) {
	users := new(MockUserReader)
	service := NewService(users)
	ctx := context.Background()

	users.On("GetByID", ctx, int64(1)).Return(nil, repository.ErrNotFound)

	_, err := service.Favorites(ctx, 1)
	assert.ErrorIs(t, err, ErrCurrentUserMissing)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestToUserResponse_FavoritesNeverNull(t *testing.T) {
	resp := ToUserResponse(&domain.User{ID: 3, Username: "han", Email: "han@falcon.net"})
	assert.NotNil(t, resp.Favorites)
	assert.Empty(t, resp.Favorites)
}
