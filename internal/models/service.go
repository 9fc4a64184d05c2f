package models

import "time"

type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Category    string `gorm:"size:50;index" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
