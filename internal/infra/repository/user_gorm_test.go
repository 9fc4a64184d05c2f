package repository

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserGormRepository(gdb)
	ctx := context.Background()

	first := &models.User{Name: "Ana Silva", Email: "ana@example.com", PasswordHash: "h", Role: "seeker", Status: "active"}
	if err := repo.Create(ctx, first, domain.DefaultSettings(0)); err != nil {
		t.Fatalf("create: %v", err)
	}

	settings, err := repo.GetSettings(ctx, first.ID)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings.ID == 0 || !settings.EmailNotifications {
		t.Errorf("expected stored default settings, got %+v", settings)
	}

	dup := &models.User{Name: "Other", Email: "ana@example.com", PasswordHash: "h", Role: "seeker", Status: "active"}
	err = repo.Create(ctx, dup, domain.DefaultSettings(0))
	if !httperr.IsBusiness(err, "email_taken") {
		t.Fatalf("expected email_taken, got %v", err)
	}

	var count int64
	gdb.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 user, got %d", count)
	}
}

func TestUserLookupNotFound(t *testing.T) {
	repo := NewUserGormRepository(newTestDB(t))

	if _, err := repo.GetByEmail(context.Background(), "nobody@example.com"); !httperr.IsBusiness(err, "user_not_found") {
		t.Errorf("expected user_not_found, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), 42); !httperr.IsBusiness(err, "user_not_found") {
		t.Errorf("expected user_not_found, got %v", err)
	}
}

func TestUserRolesSeeded(t *testing.T) {
	repo := NewUserGormRepository(newTestDB(t))

	role, err := repo.GetRoleByName(context.Background(), "provider")
	if err != nil {
		t.Fatalf("get role: %v", err)
	}
	if role.ID == 0 {
		t.Error("expected seeded provider role")
	}

	roles, err := repo.ListRoles(context.Background(), []string{"seeker", "provider"})
	if err != nil {
		t.Fatalf("list roles: %v", err)
	}
	if len(roles) != 2 {
		t.Errorf("expected 2 roles, got %d", len(roles))
	}
}

func TestUserListFilters(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserGormRepository(gdb)

	seedUser(t, gdb, "Ana Silva", "ana@example.com", "seeker")
	seedUser(t, gdb, "Bruno Costa", "bruno@example.com", "provider")
	suspended := seedUser(t, gdb, "Carla Dias", "carla@example.com", "provider")
	gdb.Model(suspended).Update("status", "suspended")

	providers, err := repo.List(context.Background(), domain.ListFilter{Role: "provider"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(providers) != 2 {
		t.Errorf("expected 2 providers, got %d", len(providers))
	}

	found, _ := repo.List(context.Background(), domain.ListFilter{Query: "BRUNO"})
	if len(found) != 1 || found[0].Email != "bruno@example.com" {
		t.Errorf("unexpected search result: %+v", found)
	}

	counts, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts.Total != 3 || counts.Active != 2 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}

func TestUserDeleteKeepsBookings(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserGormRepository(gdb)
	ctx := context.Background()

	seeker := seedUser(t, gdb, "Ana", "ana@example.com", "seeker")
	provider := seedUser(t, gdb, "Bruno", "bruno@example.com", "provider")
	svc := seedService(t, gdb, "Plumbing")
	seedOffering(t, gdb, provider.ID, svc.ID, 40)

	gdb.Create(&models.Session{UserID: provider.ID, Token: "tok", ExpiresAt: time.Now().Add(time.Hour)})
	gdb.Create(&models.Booking{
		SeekerID: seeker.ID, ProviderID: provider.ID, ServiceID: svc.ID,
		Date: "2025-03-22", StartTime: "10:00", EndTime: "11:00", TotalCost: 40, Status: "pending",
	})

	if err := repo.Delete(ctx, provider.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var offerings, sessions, bookings int64
	gdb.Model(&models.ProviderService{}).Count(&offerings)
	gdb.Model(&models.Session{}).Count(&sessions)
	gdb.Model(&models.Booking{}).Count(&bookings)

	if offerings != 0 || sessions != 0 {
		t.Errorf("expected offerings and sessions removed, got %d / %d", offerings, sessions)
	}
	if bookings != 1 {
		t.Errorf("bookings must be kept, got %d", bookings)
	}

	if err := repo.Delete(ctx, provider.ID); !httperr.IsBusiness(err, "user_not_found") {
		t.Errorf("expected user_not_found on second delete, got %v", err)
	}
}

func TestUserSaveSettingsUpserts(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserGormRepository(gdb)
	ctx := context.Background()

	u := seedUser(t, gdb, "Ana", "ana@example.com", "seeker")

	s := domain.DefaultSettings(u.ID)
	s.EmailNotifications = false
	s.Language = "nepali"
	if err := repo.SaveSettings(ctx, s); err != nil {
		t.Fatalf("insert settings: %v", err)
	}

	s.SMSNotifications = true
	if err := repo.SaveSettings(ctx, s); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	var rows int64
	gdb.Model(&models.UserSettings{}).Where("user_id = ?", u.ID).Count(&rows)
	if rows != 1 {
		t.Fatalf("expected a single settings row, got %d", rows)
	}

	contact, err := repo.GetContact(ctx, u.ID)
	if err != nil {
		t.Fatalf("contact: %v", err)
	}
	if contact.EmailNotifications {
		t.Error("contact should reflect disabled email notifications")
	}
}
