package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type ListFilter struct {
	Status string
}

type Repository interface {
	// -------- Participants --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetProviderOffering(
		ctx context.Context,
		providerID uint,
		serviceID uint,
	) (*models.ProviderService, error)

	// -------- Booking (create / conflict) --------

	// CreateBooking inserts b unless an active booking of the same provider
	// overlaps it, in which case it returns the "time_conflict" business error.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// UpdateBooking persists a transition made from status from.
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
		from string,
	) error

	// -------- Views --------
	GetBookingView(
		ctx context.Context,
		id uint,
	) (*dto.BookingView, error)

	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]dto.BookingView, error)

	ListForProvider(
		ctx context.Context,
		providerID uint,
	) ([]dto.BookingView, error)

	ListAll(
		ctx context.Context,
		filter ListFilter,
	) ([]dto.BookingView, error)

	// -------- Reminders --------
	ListDueReminders(
		ctx context.Context,
		date string,
	) ([]dto.BookingView, error)

	MarkReminderSent(
		ctx context.Context,
		id uint,
		at time.Time,
	) error

	// -------- Reviews --------
	CreateReview(
		ctx context.Context,
		r *models.Review,
	) error
}
