package booking

import "github.com/BruksfildServices01/hirely-api/internal/dto"

func ComputeStats(bookings []dto.BookingView) dto.BookingStats {
	var st dto.BookingStats

	for _, b := range bookings {
		switch Status(b.Status) {
		case StatusPending, StatusConfirmed:
			st.ActiveBookings++
		case StatusCompleted:
			st.CompletedJobs++
			st.TotalEarnings += b.TotalCost
		}
	}
	return st
}
