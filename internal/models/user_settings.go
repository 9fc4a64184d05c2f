package models

import "time"

type UserSettings struct {
	ID     uint `gorm:"primaryKey" json:"-"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	EmailNotifications bool   `json:"email_notifications"`
	SMSNotifications   bool   `json:"sms_notifications"`
	AppNotifications   bool   `json:"app_notifications"`
	Language           string `gorm:"size:20" json:"language"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
