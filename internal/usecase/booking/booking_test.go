package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/fakes"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/infra/payment"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

var (
	seeker   = user.Actor{UserID: 1, Role: user.RoleSeeker}
	provider = user.Actor{UserID: 2, Role: user.RoleProvider}
	admin    = user.Actor{UserID: 99, Role: user.RoleAdmin}
)

func participants() *fakes.Bookings {
	return &fakes.Bookings{
		GetUserFunc: func(_ context.Context, id uint) (*models.User, error) {
			role := user.RoleSeeker
			if id == provider.UserID {
				role = user.RoleProvider
			}
			return &models.User{ID: id, Role: role, Status: user.StatusActive, Email: "u@example.com"}, nil
		},
	}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Actor:      seeker,
		SeekerID:   1,
		ProviderID: 2,
		ServiceID:  3,
		Date:       "2026-03-10",
		StartTime:  "09:00",
		EndTime:    "11:00",
		TotalCost:  80,
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if !httperr.IsBusiness(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

// ======================================================
// CREATE
// ======================================================

func TestCreateBookingPending(t *testing.T) {
	repo := participants()
	var inserted *models.Booking
	repo.CreateBookingFunc = func(_ context.Context, b *models.Booking) error {
		b.ID = 10
		inserted = b
		return nil
	}
	notifier := &fakes.Notifier{}
	dispatcher, sink := fakes.Audit()

	b, err := NewCreateBooking(repo, notifier, dispatcher).Execute(context.Background(), validInput())
	dispatcher.Close()

	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inserted == nil || b.Status != "pending" {
		t.Fatalf("expected pending booking, got %+v", b)
	}
	if len(notifier.Requested) != 1 || notifier.Requested[0].ID != 10 {
		t.Errorf("provider not notified: %+v", notifier.Requested)
	}
	if got := sink.Actions(); len(got) != 1 || got[0] != "booking_created" {
		t.Errorf("unexpected audit trail: %v", got)
	}
}

func TestCreateBookingRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateBookingInput, *fakes.Bookings)
		code   string
	}{
		{"other user", func(in *CreateBookingInput, _ *fakes.Bookings) { in.Actor = user.Actor{UserID: 5, Role: "seeker"} }, "forbidden"},
		{"self booking", func(in *CreateBookingInput, _ *fakes.Bookings) { in.ProviderID = 1 }, "self_booking"},
		{"bad date", func(in *CreateBookingInput, _ *fakes.Bookings) { in.Date = "10/03/2026" }, "invalid_date_or_time"},
		{"end before start", func(in *CreateBookingInput, _ *fakes.Bookings) { in.EndTime = "08:00" }, "invalid_time_range"},
		{"negative cost", func(in *CreateBookingInput, _ *fakes.Bookings) { in.TotalCost = -1 }, "invalid_total_cost"},
		{"provider is seeker", func(in *CreateBookingInput, _ *fakes.Bookings) { in.ProviderID = 7 }, "provider_not_found"},
		{"not offered", func(_ *CreateBookingInput, r *fakes.Bookings) {
			r.GetProviderOfferingFunc = func(context.Context, uint, uint) (*models.ProviderService, error) {
				return nil, httperr.ErrBusiness("service_not_offered")
			}
		}, "service_not_offered"},
		{"unavailable offering", func(_ *CreateBookingInput, r *fakes.Bookings) {
			r.GetProviderOfferingFunc = func(context.Context, uint, uint) (*models.ProviderService, error) {
				return &models.ProviderService{AvailabilityStatus: "unavailable"}, nil
			}
		}, "provider_unavailable"},
		{"conflict", func(_ *CreateBookingInput, r *fakes.Bookings) {
			r.CreateBookingFunc = func(context.Context, *models.Booking) error {
				return httperr.ErrBusiness("time_conflict")
			}
		}, "time_conflict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := participants()
			in := validInput()
			tt.mutate(&in, repo)

			dispatcher, _ := fakes.Audit()
			defer dispatcher.Close()

			_, err := NewCreateBooking(repo, &fakes.Notifier{}, dispatcher).Execute(context.Background(), in)
			assertCode(t, err, tt.code)
		})
	}
}

func TestCreateBookingAdminOnBehalf(t *testing.T) {
	in := validInput()
	in.Actor = admin

	dispatcher, _ := fakes.Audit()
	defer dispatcher.Close()

	if _, err := NewCreateBooking(participants(), &fakes.Notifier{}, dispatcher).Execute(context.Background(), in); err != nil {
		t.Fatalf("admin create: %v", err)
	}
}

// ======================================================
// STATUS
// ======================================================

func statusRepo(status string) (*fakes.Bookings, *models.Booking) {
	b := &models.Booking{ID: 4, SeekerID: 1, ProviderID: 2, Status: status}
	return &fakes.Bookings{
		GetBookingFunc: func(context.Context, uint) (*models.Booking, error) {
			return b, nil
		},
	}, b
}

func TestUpdateStatusConfirm(t *testing.T) {
	repo, b := statusRepo("pending")
	saved := false
	repo.UpdateBookingFunc = func(_ context.Context, _ *models.Booking, from string) error {
		saved = from == "pending"
		return nil
	}
	notifier := &fakes.Notifier{}
	dispatcher, sink := fakes.Audit()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUpdateStatus(repo, notifier, dispatcher)
	uc.now = func() time.Time { return fixed }

	_, err := uc.Execute(context.Background(), provider, 4, "Confirmed")
	dispatcher.Close()

	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !saved || b.Status != "confirmed" || b.ConfirmedAt == nil || !b.ConfirmedAt.Equal(fixed) {
		t.Errorf("unexpected booking: %+v", b)
	}
	if len(notifier.Changed) != 1 {
		t.Errorf("expected 1 notification, got %d", len(notifier.Changed))
	}
	if got := sink.Actions(); len(got) != 1 || got[0] != "booking_confirmed" {
		t.Errorf("unexpected audit trail: %v", got)
	}
}

func TestUpdateStatusRules(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		actor user.Actor
		to    string
		code  string
	}{
		{"unknown status", "pending", provider, "done", "invalid_status"},
		{"seeker confirms", "pending", seeker, "confirmed", "forbidden_transition"},
		{"stranger cancels", "pending", user.Actor{UserID: 5, Role: "seeker"}, "canceled", "forbidden"},
		{"complete pending", "pending", provider, "completed", "invalid_transition"},
		{"reopen canceled", "canceled", admin, "pending", "invalid_transition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := statusRepo(tt.from)
			dispatcher, _ := fakes.Audit()
			defer dispatcher.Close()

			_, err := NewUpdateStatus(repo, &fakes.Notifier{}, dispatcher).Execute(context.Background(), tt.actor, 4, tt.to)
			assertCode(t, err, tt.code)
		})
	}
}

func TestSeekerCancelsWithBritishSpelling(t *testing.T) {
	repo, b := statusRepo("confirmed")
	dispatcher, _ := fakes.Audit()
	defer dispatcher.Close()

	if _, err := NewUpdateStatus(repo, &fakes.Notifier{}, dispatcher).Execute(context.Background(), seeker, 4, "cancelled"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if b.Status != "canceled" || b.CanceledAt == nil {
		t.Errorf("unexpected booking: %+v", b)
	}
}

func TestUpdateStatusMissingBooking(t *testing.T) {
	repo := &fakes.Bookings{
		GetBookingFunc: func(context.Context, uint) (*models.Booking, error) {
			return nil, httperr.ErrBusiness("booking_not_found")
		},
	}
	dispatcher, _ := fakes.Audit()
	defer dispatcher.Close()

	_, err := NewUpdateStatus(repo, &fakes.Notifier{}, dispatcher).Execute(context.Background(), admin, 4, "canceled")
	assertCode(t, err, "booking_not_found")
}

// ======================================================
// QUERIES
// ======================================================

func TestGetBookingVisibility(t *testing.T) {
	repo := &fakes.Bookings{
		GetBookingViewFunc: func(_ context.Context, id uint) (*dto.BookingView, error) {
			return &dto.BookingView{ID: id, SeekerID: 1, ProviderID: 2}, nil
		},
	}
	uc := NewGetBooking(repo)

	for _, a := range []user.Actor{seeker, provider, admin} {
		if _, err := uc.Execute(context.Background(), a, 4); err != nil {
			t.Errorf("actor %d: %v", a.UserID, err)
		}
	}

	_, err := uc.Execute(context.Background(), user.Actor{UserID: 5, Role: "seeker"}, 4)
	assertCode(t, err, "forbidden")
}

func TestListForUserAnnotatesRole(t *testing.T) {
	repo := &fakes.Bookings{
		ListForUserFunc: func(context.Context, uint) ([]dto.BookingView, error) {
			return []dto.BookingView{
				{ID: 1, SeekerID: 2, ProviderID: 8},
				{ID: 2, SeekerID: 6, ProviderID: 2},
			}, nil
		},
	}

	rows, err := NewListBookings(repo).ForUser(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].UserRole != "seeker" || rows[1].UserRole != "provider" {
		t.Errorf("unexpected roles: %q %q", rows[0].UserRole, rows[1].UserRole)
	}
}

func TestListAllStatusFilter(t *testing.T) {
	var got string
	repo := &fakes.Bookings{
		ListAllFunc: func(_ context.Context, f domain.ListFilter) ([]dto.BookingView, error) {
			got = f.Status
			return nil, nil
		},
	}
	uc := NewListBookings(repo)

	if _, err := uc.All(context.Background(), "Cancelled"); err != nil {
		t.Fatal(err)
	}
	if got != "canceled" {
		t.Errorf("expected canceled filter, got %q", got)
	}

	_, err := uc.All(context.Background(), "bogus")
	assertCode(t, err, "invalid_status")
}

func TestProviderStats(t *testing.T) {
	repo := &fakes.Bookings{
		ListForProviderFunc: func(context.Context, uint) ([]dto.BookingView, error) {
			return []dto.BookingView{
				{Status: "pending", TotalCost: 10},
				{Status: "confirmed", TotalCost: 20},
				{Status: "completed", TotalCost: 30},
				{Status: "completed", TotalCost: 45.5},
				{Status: "canceled", TotalCost: 99},
			}, nil
		},
	}

	st, err := NewProviderStats(repo).Execute(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if st.ActiveBookings != 2 || st.CompletedJobs != 2 || st.TotalEarnings != 75.5 {
		t.Errorf("unexpected stats: %+v", st)
	}
}

// ======================================================
// REVIEWS
// ======================================================

func TestCreateReview(t *testing.T) {
	repo, _ := statusRepo("completed")
	var stored *models.Review
	repo.CreateReviewFunc = func(_ context.Context, r *models.Review) error {
		stored = r
		return nil
	}
	c := fakes.NewCache()
	dispatcher, _ := fakes.Audit()
	defer dispatcher.Close()

	_, err := NewCreateReview(repo, c, dispatcher).Execute(context.Background(), CreateReviewInput{
		Actor: seeker, BookingID: 4, Rating: 5, Comment: "  great  ",
	})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if stored.RevieweeID != 2 || stored.ReviewerID != 1 || stored.Comment != "great" {
		t.Errorf("unexpected review: %+v", stored)
	}
	if len(c.Invalidated) != 1 {
		t.Errorf("expected provider cache invalidation, got %v", c.Invalidated)
	}
}

func TestCreateReviewRules(t *testing.T) {
	tests := []struct {
		name   string
		status string
		actor  user.Actor
		rating int
		code   string
	}{
		{"rating too high", "completed", seeker, 6, "invalid_rating"},
		{"rating zero", "completed", seeker, 0, "invalid_rating"},
		{"provider reviews", "completed", provider, 4, "forbidden"},
		{"not completed", "confirmed", seeker, 4, "booking_not_completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := statusRepo(tt.status)
			dispatcher, _ := fakes.Audit()
			defer dispatcher.Close()

			_, err := NewCreateReview(repo, fakes.NewCache(), dispatcher).Execute(context.Background(), CreateReviewInput{
				Actor: tt.actor, BookingID: 4, Rating: tt.rating,
			})
			assertCode(t, err, tt.code)
		})
	}
}

// ======================================================
// REMINDERS
// ======================================================

func TestSendRemindersTomorrow(t *testing.T) {
	var askedDate string
	var marked []uint
	repo := &fakes.Bookings{
		ListDueRemindersFunc: func(_ context.Context, date string) ([]dto.BookingView, error) {
			askedDate = date
			return []dto.BookingView{{ID: 1}, {ID: 2}}, nil
		},
		MarkReminderSentFunc: func(_ context.Context, id uint, _ time.Time) error {
			marked = append(marked, id)
			return nil
		},
	}
	notifier := &fakes.Notifier{}

	uc := NewSendReminders(repo, notifier, "UTC")
	uc.now = func() time.Time { return time.Date(2026, 12, 31, 20, 0, 0, 0, time.UTC) }

	n, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if askedDate != "2027-01-01" {
		t.Errorf("expected tomorrow, got %s", askedDate)
	}
	if n != 2 || len(marked) != 2 || len(notifier.Reminded) != 2 {
		t.Errorf("sent=%d marked=%v reminded=%d", n, marked, len(notifier.Reminded))
	}
}

func TestSendRemindersStopsOnMarkFailure(t *testing.T) {
	repo := &fakes.Bookings{
		ListDueRemindersFunc: func(context.Context, string) ([]dto.BookingView, error) {
			return []dto.BookingView{{ID: 1}, {ID: 2}}, nil
		},
		MarkReminderSentFunc: func(context.Context, uint, time.Time) error {
			return errors.New("db down")
		},
	}

	n, err := NewSendReminders(repo, &fakes.Notifier{}, "UTC").Execute(context.Background())
	if err == nil || n != 0 {
		t.Fatalf("expected failure with 0 sent, got %d %v", n, err)
	}
}

func TestSendRemindersLeavesUnqueuedUnmarked(t *testing.T) {
	marked := 0
	repo := &fakes.Bookings{
		ListDueRemindersFunc: func(context.Context, string) ([]dto.BookingView, error) {
			return []dto.BookingView{{ID: 1}, {ID: 2}}, nil
		},
		MarkReminderSentFunc: func(context.Context, uint, time.Time) error {
			marked++
			return nil
		},
	}
	notifier := &fakes.Notifier{ReminderErr: errors.New("queue full")}

	n, err := NewSendReminders(repo, notifier, "UTC").Execute(context.Background())
	if err == nil || n != 0 || marked != 0 {
		t.Fatalf("sent=%d marked=%d err=%v", n, marked, err)
	}
}

// ======================================================
// CHECKOUT
// ======================================================

type gatewayFunc func(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutLink, error)

func (f gatewayFunc) CreateCheckout(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutLink, error) {
	return f(ctx, req)
}

func TestCheckoutDisabled(t *testing.T) {
	repo, _ := statusRepo("confirmed")
	_, err := NewCheckout(repo, nil).Execute(context.Background(), seeker, 4)
	assertCode(t, err, "payments_disabled")
}

func TestCheckoutConfirmedBooking(t *testing.T) {
	repo, b := statusRepo("confirmed")
	b.TotalCost = 120
	repo.GetUserFunc = participants().GetUserFunc
	repo.GetBookingViewFunc = func(_ context.Context, id uint) (*dto.BookingView, error) {
		return &dto.BookingView{ID: id, ServiceName: "Plumbing", ProviderName: "Bob", Date: "2026-03-10"}, nil
	}

	var req payment.CheckoutRequest
	gw := gatewayFunc(func(_ context.Context, r payment.CheckoutRequest) (*payment.CheckoutLink, error) {
		req = r
		return &payment.CheckoutLink{PreferenceID: "pref-1", URL: "https://mp.example/pay"}, nil
	})

	link, err := NewCheckout(repo, gw).Execute(context.Background(), seeker, 4)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if link.PreferenceID != "pref-1" {
		t.Errorf("unexpected link: %+v", link)
	}
	if req.Amount != 120 || req.PayerEmail != "u@example.com" || req.Title != "Plumbing with Bob on 2026-03-10" {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestCheckoutRules(t *testing.T) {
	gw := gatewayFunc(func(context.Context, payment.CheckoutRequest) (*payment.CheckoutLink, error) {
		t.Fatal("gateway must not be called")
		return nil, nil
	})

	repo, _ := statusRepo("pending")
	_, err := NewCheckout(repo, gw).Execute(context.Background(), seeker, 4)
	assertCode(t, err, "booking_not_confirmed")

	repo, _ = statusRepo("confirmed")
	_, err = NewCheckout(repo, gw).Execute(context.Background(), provider, 4)
	assertCode(t, err, "forbidden")
}
