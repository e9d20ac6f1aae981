package domain

// FavoriteKind is the tagged-variant view over a Favorite row.
// Storage keeps both references nullable and never enforces exclusivity,
// so rows with both or neither reference set are representable.
type FavoriteKind string

const (
	FavoritePerson FavoriteKind = "person"
	FavoritePlanet FavoriteKind = "planet"
	FavoriteBoth   FavoriteKind = "both"
	FavoriteNone   FavoriteKind = "none"
)

// Favorite представляет связь пользователя с избранным персонажем или планетой.
type Favorite struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	UserID   int64  `json:"user_id" gorm:"not null;index"`
	PeopleID *int64 `json:"people_id" gorm:"index"`
	PlanetID *int64 `json:"planet_id" gorm:"index"`

	// Virtual fields для eager join
	User   *User   `json:"-" gorm:"foreignKey:UserID"`
	People *Person `json:"people" gorm:"foreignKey:PeopleID"`
	Planet *Planet `json:"planet" gorm:"foreignKey:PlanetID"`
}

// TableName возвращает имя таблицы в БД
func (Favorite) TableName() string {
	return "favorites"
}

// Kind reports which reference the row carries.
func (f *Favorite) Kind() FavoriteKind {
	switch {
	case f.PeopleID != nil && f.PlanetID != nil:
		return FavoriteBoth
	case f.PeopleID != nil:
		return FavoritePerson
	case f.PlanetID != nil:
		return FavoritePlanet
	default:
		return FavoriteNone
	}
}

// FavoriteFilter selects favorites of one user by the referenced row.
// Nil fields are not constrained.
type FavoriteFilter struct {
	PeopleID *int64
	PlanetID *int64
}

// AllModels returns every persisted entity in migration order.
func AllModels() []any {
	return []any{
		&User{},
		&Person{},
		&Planet{},
		&Favorite{},
	}
}
