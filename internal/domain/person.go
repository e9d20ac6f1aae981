package domain

// Person: справочная запись о персонаже. Только чтение через API.
type Person struct {
	ID        int64   `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"size:120;not null"`
	BirthYear *string `json:"birth_year" gorm:"size:10"`
	Gender    *string `json:"gender" gorm:"size:10"`
	EyeColor  *string `json:"eye_color" gorm:"size:10"`
	HairColor *string `json:"hair_color" gorm:"size:10"`
}

func (Person) TableName() string {
	return "people"
}
