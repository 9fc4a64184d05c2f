package dto

type AdminStats struct {
	TotalUsers        int64   `json:"totalUsers"`
	ActiveUsers       int64   `json:"activeUsers"`
	TotalServices     int64   `json:"totalServices"`
	TotalBookings     int64   `json:"totalBookings"`
	CompletedBookings int64   `json:"completedBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

type RatingSummary struct {
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"reviewCount"`
}
