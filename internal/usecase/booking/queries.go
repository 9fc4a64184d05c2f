package booking

import (
	"context"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
)

// ======================================================
// SINGLE
// ======================================================

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	actor user.Actor,
	id uint,
) (*dto.BookingView, error) {

	v, err := uc.repo.GetBookingView(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanView(actor, v.SeekerID, v.ProviderID) {
		return nil, httperr.ErrBusiness("forbidden")
	}
	return v, nil
}

// ======================================================
// LISTS
// ======================================================

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// ForUser returns bookings where the user is either side, each tagged
// with the side the user is on.
func (uc *ListBookings) ForUser(ctx context.Context, userID uint) ([]dto.BookingView, error) {
	rows, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if rows[i].SeekerID == userID {
			rows[i].UserRole = user.RoleSeeker
		} else {
			rows[i].UserRole = user.RoleProvider
		}
	}
	return rows, nil
}

func (uc *ListBookings) ForProvider(ctx context.Context, providerID uint) ([]dto.BookingView, error) {
	return uc.repo.ListForProvider(ctx, providerID)
}

// All is the admin listing; status may be empty.
func (uc *ListBookings) All(ctx context.Context, status string) ([]dto.BookingView, error) {
	var filter domain.ListFilter

	if status != "" {
		s, err := domain.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = string(s)
	}

	return uc.repo.ListAll(ctx, filter)
}

// ======================================================
// STATS
// ======================================================

type ProviderStats struct {
	repo domain.Repository
}

func NewProviderStats(repo domain.Repository) *ProviderStats {
	return &ProviderStats{repo: repo}
}

// Execute recomputes the counters from the provider's bookings.
func (uc *ProviderStats) Execute(ctx context.Context, providerID uint) (dto.BookingStats, error) {
	rows, err := uc.repo.ListForProvider(ctx, providerID)
	if err != nil {
		return dto.BookingStats{}, err
	}
	return domain.ComputeStats(rows), nil
}
