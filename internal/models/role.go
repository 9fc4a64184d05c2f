package models

// Role is seeded reference data; users carry both the id and the name.
type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:20;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (Role) TableName() string {
	return "user_roles"
}
