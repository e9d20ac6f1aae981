package domain

// Planet: справочная запись о планете. Только чтение через API.
type Planet struct {
	ID         int64   `json:"id" gorm:"primaryKey"`
	Name       string  `json:"name" gorm:"size:120;not null"`
	Climate    *string `json:"climate" gorm:"size:120"`
	Terrain    *string `json:"terrain" gorm:"size:120"`
	Population *int64  `json:"population"`
}

func (Planet) TableName() string {
	return "planets"
}
