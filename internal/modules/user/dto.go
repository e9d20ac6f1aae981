package user

import (
	"starcatalog/internal/domain"
	"starcatalog/internal/modules/favorite"
)

// UserResponse: пользователь вместе со всем избранным
type UserResponse struct {
	ID        int64                       `json:"id"`
	Username  string                      `json:"username"`
	Email     string                      `json:"email"`
	Favorites []favorite.FavoriteResponse `json:"favorites"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Favorites: favorite.ToFavoritesResponse(u.Favorites),
	}
}

func ToUsersResponse(users []domain.User) []UserResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}
	return items
}
