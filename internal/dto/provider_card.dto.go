package dto

// ProviderCard is one row of the "providers for a service" listing.
type ProviderCard struct {
	ID                 uint    `json:"id"`
	ProviderID         uint    `json:"providerId"`
	ServiceID          uint    `json:"serviceId"`
	Name               string  `json:"name"`
	HourlyRate         float64 `json:"hourlyRate"`
	Rating             float64 `json:"rating"`
	ReviewCount        int64   `json:"reviewCount"`
	Bio                string  `json:"bio"`
	ServiceName        string  `json:"serviceName"`
	AvailabilityStatus string  `json:"availabilityStatus"`
	ProfilePic         string  `json:"profilePic"`
}

// ProviderServiceView flattens an offering with provider and service names.
type ProviderServiceView struct {
	ID                 uint    `json:"id"`
	ProviderID         uint    `json:"provider_id"`
	ServiceID          uint    `json:"service_id"`
	ProviderName       string  `json:"provider_name"`
	ServiceName        string  `json:"service_name"`
	Category           string  `json:"category"`
	HourlyRate         float64 `json:"hourly_rate"`
	AvailabilityStatus string  `json:"availability_status"`
	ProfessionalBio    string  `json:"professional_bio"`
}

// ProviderProfile is the provider dashboard header.
type ProviderProfile struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Bio        string `json:"bio"`
	ProfilePic string `json:"profilePic"`
	Status     string `json:"status"`

	Services    []ProviderServiceView `json:"services"`
	Rating      float64               `json:"rating"`
	ReviewCount int64                 `json:"reviewCount"`
	Stats       BookingStats          `json:"stats"`
}
