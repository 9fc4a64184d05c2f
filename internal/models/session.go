package models

import "time"

type Session struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	Token     string     `gorm:"size:64;uniqueIndex;not null" json:"-"`
	IPAddress string     `gorm:"size:64" json:"ip_address"`
	UserAgent string     `gorm:"size:255" json:"user_agent"`
	ExpiresAt time.Time  `gorm:"index" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`

	CreatedAt time.Time `json:"created_at"`
}

func (Session) TableName() string {
	return "user_sessions"
}
