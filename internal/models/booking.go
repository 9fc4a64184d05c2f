package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SeekerID   uint `gorm:"not null;index" json:"seeker_id"`
	ProviderID uint `gorm:"not null;index:idx_booking_provider_date" json:"provider_id"`
	ServiceID  uint `gorm:"not null;index" json:"service_id"`

	// Date is YYYY-MM-DD; StartTime and EndTime are HH:MM (24h).
	Date      string `gorm:"size:10;not null;index:idx_booking_provider_date" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	TotalCost float64 `gorm:"type:decimal(10,2);not null" json:"total_cost"`
	Status    string  `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Notes     string  `gorm:"type:text" json:"notes"`

	ConfirmedAt    *time.Time `json:"confirmed_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	CanceledAt     *time.Time `json:"canceled_at"`
	ReminderSentAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
