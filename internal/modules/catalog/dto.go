package catalog

import "starcatalog/internal/domain"

// PersonResponse: все поля персонажа, null остаётся null
type PersonResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
	EyeColor  *string `json:"eye_color"`
	HairColor *string `json:"hair_color"`
}

// PlanetResponse: все поля планеты
type PlanetResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Climate    *string `json:"climate"`
	Terrain    *string `json:"terrain"`
	Population *int64  `json:"population"`
}

func ToPersonResponse(p *domain.Person) *PersonResponse {
	if p == nil {
		return nil
	}
	return &PersonResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthYear: p.BirthYear,
		Gender:    p.Gender,
		EyeColor:  p.EyeColor,
		HairColor: p.HairColor,
	}
}

func ToPlanetResponse(p *domain.Planet) *PlanetResponse {
	if p == nil {
		return nil
	}
	return &PlanetResponse{
		ID:         p.ID,
		Name:       p.Name,
		Climate:    p.Climate,
		Terrain:    p.Terrain,
		Population: p.Population,
	}
}

func ToPeopleResponse(people []domain.Person) []PersonResponse {
	items := make([]PersonResponse, len(people))
	for i := range people {
		items[i] = *ToPersonResponse(&people[i])
	}
	return items
}

func ToPlanetsResponse(planets []domain.Planet) []PlanetResponse {
	items := make([]PlanetResponse, len(planets))
	for i := range planets {
		items[i] = *ToPlanetResponse(&planets[i])
	}
	return items
}
