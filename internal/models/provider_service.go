package models

import "time"

// ProviderService is one provider's offering of one catalog service.
type ProviderService struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"not null;uniqueIndex:idx_provider_service" json:"provider_id"`
	ServiceID  uint `gorm:"not null;uniqueIndex:idx_provider_service;index" json:"service_id"`

	HourlyRate         float64 `gorm:"type:decimal(10,2);not null" json:"hourly_rate"`
	AvailabilityStatus string  `gorm:"size:20;not null;default:'available'" json:"availability_status"`
	ProfessionalBio    string  `gorm:"type:text" json:"professional_bio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
