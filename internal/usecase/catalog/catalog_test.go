package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/fakes"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

var (
	providerActor = user.Actor{UserID: 2, Role: "provider"}
	adminActor    = user.Actor{UserID: 99, Role: "admin"}
)

// ======================================================
// REGISTER
// ======================================================

func TestRegisterOfferingsDefaultsAvailability(t *testing.T) {
	var stored []models.ProviderService
	repo := &fakes.Catalog{
		CreateOfferingsFunc: func(_ context.Context, rows []models.ProviderService) error {
			stored = rows
			return nil
		},
	}
	c := fakes.NewCache()
	dispatcher, sink := fakes.Audit()

	uc := NewRegisterOfferings(repo, c, dispatcher)
	rows, err := uc.Execute(context.Background(), RegisterInput{
		Actor:      providerActor,
		ProviderID: 2,
		Services: []OfferingInput{
			{ServiceID: 1, HourlyRate: 40},
			{ServiceID: 3, HourlyRate: 0, AvailabilityStatus: "Unavailable"},
		},
	})
	dispatcher.Close()

	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(rows) != 2 || len(stored) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stored))
	}
	if stored[0].AvailabilityStatus != "available" || stored[1].AvailabilityStatus != "unavailable" {
		t.Errorf("unexpected availability: %+v", stored)
	}
	if len(c.Invalidated) == 0 {
		t.Error("provider cache not invalidated")
	}
	if got := sink.Actions(); len(got) != 1 || got[0] != "offerings_registered" {
		t.Errorf("unexpected audit trail: %v", got)
	}
}

func TestRegisterOfferingsValidation(t *testing.T) {
	dispatcher, _ := fakes.Audit()
	defer dispatcher.Close()

	missingService := &fakes.Catalog{
		GetServiceFunc: func(context.Context, uint) (*models.Service, error) {
			return nil, httperr.ErrBusiness("service_not_found")
		},
	}

	cases := []struct {
		name string
		repo *fakes.Catalog
		in   RegisterInput
		code string
	}{
		{
			name: "other provider",
			repo: &fakes.Catalog{},
			in:   RegisterInput{Actor: user.Actor{UserID: 7, Role: "provider"}, ProviderID: 2, Services: []OfferingInput{{ServiceID: 1}}},
			code: "forbidden",
		},
		{
			name: "empty list",
			repo: &fakes.Catalog{},
			in:   RegisterInput{Actor: providerActor, ProviderID: 2},
			code: "no_services",
		},
		{
			name: "negative rate",
			repo: &fakes.Catalog{},
			in:   RegisterInput{Actor: providerActor, ProviderID: 2, Services: []OfferingInput{{ServiceID: 1, HourlyRate: -1}}},
			code: "invalid_hourly_rate",
		},
		{
			name: "repeated service",
			repo: &fakes.Catalog{},
			in:   RegisterInput{Actor: adminActor, ProviderID: 2, Services: []OfferingInput{{ServiceID: 1}, {ServiceID: 1}}},
			code: "service_already_registered",
		},
		{
			name: "bad availability",
			repo: &fakes.Catalog{},
			in:   RegisterInput{Actor: providerActor, ProviderID: 2, Services: []OfferingInput{{ServiceID: 1, AvailabilityStatus: "busy"}}},
			code: "invalid_availability",
		},
		{
			name: "unknown service",
			repo: missingService,
			in:   RegisterInput{Actor: providerActor, ProviderID: 2, Services: []OfferingInput{{ServiceID: 9}}},
			code: "service_not_found",
		},
	}

	for _, tc := range cases {
		written := false
		tc.repo.CreateOfferingsFunc = func(context.Context, []models.ProviderService) error {
			written = true
			return nil
		}

		_, err := NewRegisterOfferings(tc.repo, fakes.NewCache(), dispatcher).Execute(context.Background(), tc.in)
		if !httperr.IsBusiness(err, tc.code) {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
		if written {
			t.Errorf("%s: nothing may be written", tc.name)
		}
	}
}

// ======================================================
// LISTINGS
// ======================================================

func TestListProvidersByServiceIsCached(t *testing.T) {
	calls := 0
	repo := &fakes.Catalog{
		ListProviderCardsFunc: func(_ context.Context, serviceID uint) ([]dto.ProviderCard, error) {
			calls++
			return []dto.ProviderCard{{ID: 1, ServiceID: serviceID, Name: "Bruno", Rating: 4.5}}, nil
		},
	}
	c := fakes.NewCache()
	uc := NewListProvidersByService(repo, c, time.Minute)

	for i := 0; i < 2; i++ {
		cards, err := uc.Execute(context.Background(), 3)
		if err != nil {
			t.Fatal(err)
		}
		if len(cards) != 1 || cards[0].Rating != 4.5 {
			t.Fatalf("unexpected cards: %+v", cards)
		}
	}
	if calls != 1 {
		t.Errorf("expected one repository call, got %d", calls)
	}

	dispatcher, _ := fakes.Audit()
	defer dispatcher.Close()
	NewManageOffering(&fakes.Catalog{}, c, dispatcher).Delete(context.Background(), providerActor, 2, 1)

	uc.Execute(context.Background(), 3)
	if calls != 2 {
		t.Errorf("offering change should invalidate cards, got %d calls", calls)
	}
}

func TestListServicesPassesNameFilter(t *testing.T) {
	var got string
	repo := &fakes.Catalog{
		ListServicesFunc: func(_ context.Context, name string) ([]models.Service, error) {
			got = name
			return []models.Service{{ID: 1, Name: name}}, nil
		},
	}

	list, err := NewListServices(repo, fakes.NewCache(), time.Minute).Execute(context.Background(), " Plumbing ")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Plumbing" || len(list) != 1 {
		t.Errorf("unexpected filter %q / %+v", got, list)
	}
}

// ======================================================
// ADMIN CATALOG
// ======================================================

func TestDeleteServiceInUse(t *testing.T) {
	deleted := false
	repo := &fakes.Catalog{
		ServiceInUseFunc: func(context.Context, uint) (bool, error) { return true, nil },
		DeleteServiceFunc: func(context.Context, uint) error {
			deleted = true
			return nil
		},
	}
	dispatcher, _ := fakes.Audit()
	defer dispatcher.Close()

	err := NewManageServices(repo, fakes.NewCache(), dispatcher).Delete(context.Background(), 99, 4)
	if !httperr.IsBusiness(err, "service_in_use") {
		t.Fatalf("expected service_in_use, got %v", err)
	}
	if deleted {
		t.Error("service in use must not be deleted")
	}
}

func TestCreateServiceInvalidatesCatalog(t *testing.T) {
	c := fakes.NewCache()
	dispatcher, sink := fakes.Audit()

	s, err := NewManageServices(&fakes.Catalog{}, c, dispatcher).Create(context.Background(), 99, ServiceInput{Name: " Gardening "})
	dispatcher.Close()

	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "Gardening" {
		t.Errorf("name not trimmed: %q", s.Name)
	}
	if len(c.Invalidated) != 2 {
		t.Errorf("expected services and providers invalidated, got %v", c.Invalidated)
	}
	if got := sink.Actions(); len(got) != 1 || got[0] != "service_created" {
		t.Errorf("unexpected audit trail: %v", got)
	}
}

// ======================================================
// PROVIDER PROFILE
// ======================================================

func TestUpdateProviderProfilePassesRate(t *testing.T) {
	var gotRate *float64
	var gotUser *models.User
	repo := &fakes.Catalog{
		UpdateProviderProfileFunc: func(_ context.Context, u *models.User, rate *float64) error {
			gotUser, gotRate = u, rate
			return nil
		},
	}
	dispatcher, _ := fakes.Audit()
	defer dispatcher.Close()

	bio := "Licensed electrician"
	rate := 55.0
	_, err := NewUpdateProviderProfile(repo, fakes.NewCache(), dispatcher).Execute(context.Background(), UpdateProviderProfileInput{
		Actor: providerActor, ProviderID: 2, Bio: &bio, HourlyRate: &rate,
	})
	if err != nil {
		t.Fatal(err)
	}
	if gotUser.Bio != bio || gotRate == nil || *gotRate != 55 {
		t.Errorf("unexpected update: %+v rate=%v", gotUser, gotRate)
	}

	neg := -5.0
	_, err = NewUpdateProviderProfile(repo, fakes.NewCache(), dispatcher).Execute(context.Background(), UpdateProviderProfileInput{
		Actor: providerActor, ProviderID: 2, HourlyRate: &neg,
	})
	if !httperr.IsBusiness(err, "invalid_hourly_rate") {
		t.Errorf("expected invalid_hourly_rate, got %v", err)
	}
}

func TestGetProviderProfileAggregates(t *testing.T) {
	repo := &fakes.Catalog{
		RatingSummaryFunc: func(context.Context, uint) (dto.RatingSummary, error) {
			return dto.RatingSummary{Rating: 4.7, ReviewCount: 12}, nil
		},
	}
	bookings := &fakes.Bookings{
		ListForProviderFunc: func(context.Context, uint) ([]dto.BookingView, error) {
			return []dto.BookingView{
				{Status: "pending", TotalCost: 10},
				{Status: "completed", TotalCost: 1500},
				{Status: "completed", TotalCost: 500},
			}, nil
		},
	}

	p, err := NewGetProviderProfile(repo, bookings).Execute(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if p.Rating != 4.7 || p.ReviewCount != 12 {
		t.Errorf("unexpected rating: %+v", p)
	}
	if p.Stats.ActiveBookings != 1 || p.Stats.CompletedJobs != 2 || p.Stats.TotalEarnings != 2000 {
		t.Errorf("unexpected stats: %+v", p.Stats)
	}
	if p.Services == nil {
		t.Error("services must be an empty list, not null")
	}
}

func TestCheckAvailability(t *testing.T) {
	active := &fakes.Catalog{}
	suspended := &fakes.Catalog{
		GetProviderFunc: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: "provider", Status: "suspended"}, nil
		},
	}
	missing := &fakes.Catalog{
		GetProviderFunc: func(context.Context, uint) (*models.User, error) {
			return nil, httperr.ErrBusiness("provider_not_found")
		},
	}

	if ok, _ := NewCheckAvailability(active).Execute(context.Background(), 2); !ok {
		t.Error("active provider should be available")
	}
	if ok, _ := NewCheckAvailability(suspended).Execute(context.Background(), 2); ok {
		t.Error("suspended provider should not be available")
	}
	if ok, err := NewCheckAvailability(missing).Execute(context.Background(), 2); ok || err != nil {
		t.Errorf("missing provider: got %v %v", ok, err)
	}
}
