package favorite

import (
	"starcatalog/internal/domain"
	"starcatalog/internal/modules/catalog"
)

// FavoriteResponse: people и planet всегда присутствуют, null если ссылка не найдена
type FavoriteResponse struct {
	ID     int64                   `json:"id"`
	UserID int64                   `json:"user_id"`
	People *catalog.PersonResponse `json:"people"`
	Planet *catalog.PlanetResponse `json:"planet"`
}

func ToFavoriteResponse(f *domain.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:     f.ID,
		UserID: f.UserID,
		People: catalog.ToPersonResponse(f.People),
		Planet: catalog.ToPlanetResponse(f.Planet),
	}
}

func ToFavoritesResponse(favorites []domain.Favorite) []FavoriteResponse {
	items := make([]FavoriteResponse, len(favorites))
	for i := range favorites {
		items[i] = ToFavoriteResponse(&favorites[i])
	}
	return items
}
