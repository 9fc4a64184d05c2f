package fakes

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type Bookings struct {
	GetUserFunc             func(ctx context.Context, id uint) (*models.User, error)
	GetProviderOfferingFunc func(ctx context.Context, providerID, serviceID uint) (*models.ProviderService, error)
	CreateBookingFunc       func(ctx context.Context, b *models.Booking) error
	GetBookingFunc          func(ctx context.Context, id uint) (*models.Booking, error)
	UpdateBookingFunc       func(ctx context.Context, b *models.Booking, from string) error
	GetBookingViewFunc      func(ctx context.Context, id uint) (*dto.BookingView, error)
	ListForUserFunc         func(ctx context.Context, userID uint) ([]dto.BookingView, error)
	ListForProviderFunc     func(ctx context.Context, providerID uint) ([]dto.BookingView, error)
	ListAllFunc             func(ctx context.Context, f booking.ListFilter) ([]dto.BookingView, error)
	ListDueRemindersFunc    func(ctx context.Context, date string) ([]dto.BookingView, error)
	MarkReminderSentFunc    func(ctx context.Context, id uint, at time.Time) error
	CreateReviewFunc        func(ctx context.Context, r *models.Review) error
}

func (f *Bookings) GetUser(ctx context.Context, id uint) (*models.User, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, id)
	}
	return &models.User{ID: id, Status: "active"}, nil
}

func (f *Bookings) GetProviderOffering(ctx context.Context, providerID, serviceID uint) (*models.ProviderService, error) {
	if f.GetProviderOfferingFunc != nil {
		return f.GetProviderOfferingFunc(ctx, providerID, serviceID)
	}
	return &models.ProviderService{ProviderID: providerID, ServiceID: serviceID, AvailabilityStatus: "available"}, nil
}

func (f *Bookings) CreateBooking(ctx context.Context, b *models.Booking) error {
	if f.CreateBookingFunc != nil {
		return f.CreateBookingFunc(ctx, b)
	}
	return nil
}

func (f *Bookings) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	if f.GetBookingFunc != nil {
		return f.GetBookingFunc(ctx, id)
	}
	return nil, nil
}

func (f *Bookings) UpdateBooking(ctx context.Context, b *models.Booking, from string) error {
	if f.UpdateBookingFunc != nil {
		return f.UpdateBookingFunc(ctx, b, from)
	}
	return nil
}

func (f *Bookings) GetBookingView(ctx context.Context, id uint) (*dto.BookingView, error) {
	if f.GetBookingViewFunc != nil {
		return f.GetBookingViewFunc(ctx, id)
	}
	return &dto.BookingView{ID: id}, nil
}

func (f *Bookings) ListForUser(ctx context.Context, userID uint) ([]dto.BookingView, error) {
	if f.ListForUserFunc != nil {
		return f.ListForUserFunc(ctx, userID)
	}
	return nil, nil
}

func (f *Bookings) ListForProvider(ctx context.Context, providerID uint) ([]dto.BookingView, error) {
	if f.ListForProviderFunc != nil {
		return f.ListForProviderFunc(ctx, providerID)
	}
	return nil, nil
}

func (f *Bookings) ListAll(ctx context.Context, filter booking.ListFilter) ([]dto.BookingView, error) {
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx, filter)
	}
	return nil, nil
}

func (f *Bookings) ListDueReminders(ctx context.Context, date string) ([]dto.BookingView, error) {
	if f.ListDueRemindersFunc != nil {
		return f.ListDueRemindersFunc(ctx, date)
	}
	return nil, nil
}

func (f *Bookings) MarkReminderSent(ctx context.Context, id uint, at time.Time) error {
	if f.MarkReminderSentFunc != nil {
		return f.MarkReminderSentFunc(ctx, id, at)
	}
	return nil
}

func (f *Bookings) CreateReview(ctx context.Context, r *models.Review) error {
	if f.CreateReviewFunc != nil {
		return f.CreateReviewFunc(ctx, r)
	}
	return nil
}

var _ booking.Repository = (*Bookings)(nil)
