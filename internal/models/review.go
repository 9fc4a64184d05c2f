package models

import "time"

type Review struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	BookingID  uint   `gorm:"not null;uniqueIndex" json:"booking_id"`
	ReviewerID uint   `gorm:"not null" json:"reviewer_id"`
	RevieweeID uint   `gorm:"not null;index" json:"reviewee_id"`
	Rating     int    `gorm:"not null" json:"rating"`
	Comment    string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
