package admin

import (
	"context"

	"github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/domain/catalog"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
)

// Stats aggregates the dashboard counters from the three repositories.
type Stats struct {
	users    user.Repository
	catalog  catalog.Repository
	bookings booking.Repository
}

func NewStats(users user.Repository, c catalog.Repository, b booking.Repository) *Stats {
	return &Stats{users: users, catalog: c, bookings: b}
}

func (uc *Stats) Execute(ctx context.Context) (dto.AdminStats, error) {
	var out dto.AdminStats

	counts, err := uc.users.Count(ctx)
	if err != nil {
		return out, err
	}
	out.TotalUsers = counts.Total
	out.ActiveUsers = counts.Active

	if out.TotalServices, err = uc.catalog.CountServices(ctx); err != nil {
		return out, err
	}

	rows, err := uc.bookings.ListAll(ctx, booking.ListFilter{})
	if err != nil {
		return out, err
	}

	st := booking.ComputeStats(rows)
	out.TotalBookings = int64(len(rows))
	out.CompletedBookings = int64(st.CompletedJobs)
	out.TotalRevenue = st.TotalEarnings

	return out, nil
}
