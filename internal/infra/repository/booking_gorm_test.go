package repository

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type bookingFixture struct {
	repo     *BookingGormRepository
	seeker   *models.User
	provider *models.User
	service  *models.Service
}

func newBookingFixture(t *testing.T) bookingFixture {
	gdb := newTestDB(t)

	f := bookingFixture{
		repo:     NewBookingGormRepository(gdb),
		seeker:   seedUser(t, gdb, "Ana", "ana@example.com", "seeker"),
		provider: seedUser(t, gdb, "Bruno", "bruno@example.com", "provider"),
		service:  seedService(t, gdb, "Plumbing"),
	}
	seedOffering(t, gdb, f.provider.ID, f.service.ID, 40)
	return f
}

func (f bookingFixture) booking(date, start, end, status string) *models.Booking {
	return &models.Booking{
		SeekerID:   f.seeker.ID,
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		TotalCost:  80,
		Status:     status,
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	if err := f.repo.CreateBooking(ctx, f.booking("2025-03-22", "10:00", "12:00", "pending")); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	err := f.repo.CreateBooking(ctx, f.booking("2025-03-22", "11:00", "13:00", "pending"))
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}

	if err := f.repo.CreateBooking(ctx, f.booking("2025-03-22", "12:00", "13:00", "pending")); err != nil {
		t.Errorf("back-to-back booking rejected: %v", err)
	}
	if err := f.repo.CreateBooking(ctx, f.booking("2025-03-23", "10:00", "12:00", "pending")); err != nil {
		t.Errorf("next-day booking rejected: %v", err)
	}
}

func TestCreateBookingIgnoresCanceled(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	b := f.booking("2025-03-22", "10:00", "12:00", "pending")
	if err := f.repo.CreateBooking(ctx, b); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := domain.Transition(b, domain.StatusCanceled, time.Now()); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := f.repo.UpdateBooking(ctx, b, "pending"); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := f.repo.CreateBooking(ctx, f.booking("2025-03-22", "10:00", "12:00", "pending")); err != nil {
		t.Errorf("slot of a canceled booking should be free: %v", err)
	}
}

func TestUpdateBookingRejectsStaleTransition(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created := f.booking("2025-03-22", "10:00", "12:00", "pending")
	if err := f.repo.CreateBooking(ctx, created); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, _ := f.repo.GetBooking(ctx, created.ID)
	second, _ := f.repo.GetBooking(ctx, created.ID)

	if err := domain.Transition(first, domain.StatusCanceled, time.Now()); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := f.repo.UpdateBooking(ctx, first, "pending"); err != nil {
		t.Fatalf("cancel update: %v", err)
	}

	if err := domain.Transition(second, domain.StatusConfirmed, time.Now()); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	err := f.repo.UpdateBooking(ctx, second, "pending")
	if !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("expected invalid_transition, got %v", err)
	}

	got, err := f.repo.GetBooking(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != "canceled" || got.CanceledAt == nil || got.ConfirmedAt != nil {
		t.Errorf("canceled booking was overwritten: status=%s canceled_at=%v", got.Status, got.CanceledAt)
	}
}

func TestBookingViews(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	b := f.booking("2025-03-22", "10:00", "12:00", "pending")
	if err := f.repo.CreateBooking(ctx, b); err != nil {
		t.Fatalf("create: %v", err)
	}

	v, err := f.repo.GetBookingView(ctx, b.ID)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if v.ServiceName != "Plumbing" || v.ProviderName != "Bruno" || v.SeekerName != "Ana" {
		t.Errorf("unexpected names: %+v", v)
	}

	if _, err := f.repo.GetBookingView(ctx, 999); !httperr.IsBusiness(err, "booking_not_found") {
		t.Errorf("expected booking_not_found, got %v", err)
	}

	forSeeker, _ := f.repo.ListForUser(ctx, f.seeker.ID)
	forProvider, _ := f.repo.ListForProvider(ctx, f.provider.ID)
	if len(forSeeker) != 1 || len(forProvider) != 1 {
		t.Errorf("expected one booking per participant, got %d / %d", len(forSeeker), len(forProvider))
	}

	confirmed, _ := f.repo.ListAll(ctx, domain.ListFilter{Status: "confirmed"})
	if len(confirmed) != 0 {
		t.Errorf("status filter ignored: %+v", confirmed)
	}
}

func TestDueReminders(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	due := f.booking("2025-03-23", "09:00", "10:00", "confirmed")
	pending := f.booking("2025-03-23", "11:00", "12:00", "pending")
	for _, b := range []*models.Booking{due, pending} {
		if err := f.repo.CreateBooking(ctx, b); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	rows, err := f.repo.ListDueReminders(ctx, "2025-03-23")
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != due.ID {
		t.Fatalf("expected only the confirmed booking, got %+v", rows)
	}

	if err := f.repo.MarkReminderSent(ctx, due.ID, time.Now()); err != nil {
		t.Fatalf("mark: %v", err)
	}
	rows, _ = f.repo.ListDueReminders(ctx, "2025-03-23")
	if len(rows) != 0 {
		t.Errorf("reminder should not be due twice, got %+v", rows)
	}
}

func TestCreateReviewOncePerBooking(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	rv := &models.Review{BookingID: 1, ReviewerID: f.seeker.ID, RevieweeID: f.provider.ID, Rating: 5}
	if err := f.repo.CreateReview(ctx, rv); err != nil {
		t.Fatalf("review: %v", err)
	}

	again := &models.Review{BookingID: 1, ReviewerID: f.seeker.ID, RevieweeID: f.provider.ID, Rating: 1}
	if err := f.repo.CreateReview(ctx, again); !httperr.IsBusiness(err, "review_exists") {
		t.Errorf("expected review_exists, got %v", err)
	}
}
