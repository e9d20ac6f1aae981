package domain

// User is the owner of a favorites list. There is no endpoint that creates
// users; rows come from the seed command or are inserted out of band.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Email    string `json:"email" gorm:"size:120;uniqueIndex;not null"`

	Favorites []Favorite `json:"favorites" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
