package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	RoleID uint   `json:"role_id"`
	Role   string `gorm:"size:20;index;not null" json:"role"`

	Phone      string `gorm:"size:20" json:"phone"`
	Address    string `gorm:"size:255" json:"address"`
	Bio        string `gorm:"type:text" json:"bio"`
	ProfilePic string `gorm:"size:255" json:"profile_pic"`

	Status    string     `gorm:"size:20;index;not null;default:'active'" json:"status"`
	LastLogin *time.Time `json:"last_login"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
