package dto

import "time"

// BookingView is a booking joined with display names.
type BookingView struct {
	ID         uint `json:"id"`
	SeekerID   uint `json:"seeker_id"`
	ProviderID uint `json:"provider_id"`
	ServiceID  uint `json:"service_id"`

	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	TotalCost float64 `json:"total_cost"`
	Status    string  `json:"status"`
	Notes     string  `json:"notes"`

	ServiceName  string `json:"service_name"`
	ProviderName string `json:"provider_name"`
	SeekerName   string `json:"seeker_name"`

	// UserRole is set only on per-user listings.
	UserRole string `gorm:"-" json:"userRole,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingStats struct {
	ActiveBookings int     `json:"activeBookings"`
	CompletedJobs  int     `json:"completedJobs"`
	TotalEarnings  float64 `json:"totalEarnings"`
}
