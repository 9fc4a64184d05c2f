package admin

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/fakes"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

var admin = user.Actor{UserID: 1, Role: user.RoleAdmin}

func usersWith(u *models.User) *fakes.Users {
	return &fakes.Users{
		GetByIDFunc: func(context.Context, uint) (*models.User, error) {
			return u, nil
		},
	}
}

func TestListUsersNormalisesStatus(t *testing.T) {
	var got user.ListFilter
	repo := &fakes.Users{
		ListFunc: func(_ context.Context, f user.ListFilter) ([]models.User, error) {
			got = f
			return nil, nil
		},
	}
	uc := NewListUsers(repo)

	if _, err := uc.Execute(context.Background(), user.ListFilter{Role: "provider", Status: "Suspended"}); err != nil {
		t.Fatal(err)
	}
	if got.Status != "suspended" || got.Role != "provider" {
		t.Errorf("unexpected filter: %+v", got)
	}

	if _, err := uc.Execute(context.Background(), user.ListFilter{Status: "gone"}); !httperr.IsBusiness(err, "invalid_user_status") {
		t.Fatalf("expected invalid_user_status, got %v", err)
	}
}

func TestSuspendRevokesSessions(t *testing.T) {
	u := &models.User{ID: 5, Role: user.RoleProvider, Status: user.StatusActive}
	revoked := uint(0)
	sessions := &fakes.Sessions{
		RevokeAllForUserFunc: func(_ context.Context, id uint, _ time.Time) error {
			revoked = id
			return nil
		},
	}
	c := fakes.NewCache()
	dispatcher, sink := fakes.Audit()

	_, err := NewSetUserStatus(usersWith(u), sessions, c, dispatcher).Execute(context.Background(), admin, 5, "suspended")
	dispatcher.Close()

	if err != nil {
		t.Fatal(err)
	}
	if u.Status != "suspended" || revoked != 5 {
		t.Errorf("status %q revoked %d", u.Status, revoked)
	}
	if len(c.Invalidated) != 1 {
		t.Errorf("expected provider invalidation, got %v", c.Invalidated)
	}
	if got := sink.Actions(); len(got) != 1 || got[0] != "user_status_changed" {
		t.Errorf("unexpected audit trail: %v", got)
	}
}

func TestActivateKeepsSessions(t *testing.T) {
	u := &models.User{ID: 5, Role: user.RoleSeeker, Status: user.StatusInactive}
	sessions := &fakes.Sessions{
		RevokeAllForUserFunc: func(context.Context, uint, time.Time) error {
			t.Fatal("sessions must not be revoked")
			return nil
		},
	}
	dispatcher, _ := fakes.Audit()
	defer dispatcher.Close()

	if _, err := NewSetUserStatus(usersWith(u), sessions, fakes.NewCache(), dispatcher).Execute(context.Background(), admin, 5, "ACTIVE"); err != nil {
		t.Fatal(err)
	}
	if u.Status != "active" {
		t.Errorf("unexpected status %q", u.Status)
	}
}

func TestDeleteUser(t *testing.T) {
	deleted := uint(0)
	repo := usersWith(&models.User{ID: 5, Role: user.RoleSeeker})
	repo.DeleteFunc = func(_ context.Context, id uint) error {
		deleted = id
		return nil
	}
	dispatcher, _ := fakes.Audit()
	defer dispatcher.Close()

	if err := NewDeleteUser(repo, fakes.NewCache(), dispatcher).Execute(context.Background(), admin, 5); err != nil {
		t.Fatal(err)
	}
	if deleted != 5 {
		t.Errorf("expected delete of 5, got %d", deleted)
	}
}

func TestDeleteAdminRefused(t *testing.T) {
	repo := usersWith(&models.User{ID: 7, Role: user.RoleAdmin})
	repo.DeleteFunc = func(context.Context, uint) error {
		t.Fatal("admin must not be deleted")
		return nil
	}
	dispatcher, _ := fakes.Audit()
	defer dispatcher.Close()

	err := NewDeleteUser(repo, fakes.NewCache(), dispatcher).Execute(context.Background(), admin, 7)
	if !httperr.IsBusiness(err, "cannot_delete_admin") {
		t.Fatalf("expected cannot_delete_admin, got %v", err)
	}
}

func TestStats(t *testing.T) {
	users := &fakes.Users{
		CountFunc: func(context.Context) (user.Counts, error) {
			return user.Counts{Total: 12, Active: 10}, nil
		},
	}
	catalog := &fakes.Catalog{
		CountServicesFunc: func(context.Context) (int64, error) { return 4, nil },
	}
	bookings := &fakes.Bookings{
		ListAllFunc: func(context.Context, booking.ListFilter) ([]dto.BookingView, error) {
			return []dto.BookingView{
				{Status: "completed", TotalCost: 100},
				{Status: "completed", TotalCost: 50},
				{Status: "pending", TotalCost: 70},
			}, nil
		},
	}

	st, err := NewStats(users, catalog, bookings).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := dto.AdminStats{TotalUsers: 12, ActiveUsers: 10, TotalServices: 4, TotalBookings: 3, CompletedBookings: 2, TotalRevenue: 150}
	if st != want {
		t.Errorf("got %+v, want %+v", st, want)
	}
}
