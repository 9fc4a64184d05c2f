package catalog

import (
	"context"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	domain "github.com/BruksfildServices01/hirely-api/internal/domain/catalog"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/infra/cache"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type OfferingInput struct {
	ServiceID          uint
	HourlyRate         float64
	AvailabilityStatus string
	ProfessionalBio    string
}

type RegisterInput struct {
	Actor      user.Actor
	ProviderID uint
	Services   []OfferingInput
}

// ======================================================
// USE CASE
// ======================================================

type RegisterOfferings struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewRegisterOfferings(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *RegisterOfferings {
	return &RegisterOfferings{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterOfferings) Execute(
	ctx context.Context,
	in RegisterInput,
) ([]models.ProviderService, error) {

	if !in.Actor.CanActFor(in.ProviderID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if len(in.Services) == 0 {
		return nil, httperr.ErrBusiness("no_services")
	}

	if _, err := uc.repo.GetProvider(ctx, in.ProviderID); err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(in.Services))
	rows := make([]models.ProviderService, 0, len(in.Services))

	for _, s := range in.Services {
		if seen[s.ServiceID] {
			return nil, httperr.ErrBusiness("service_already_registered")
		}
		seen[s.ServiceID] = true

		if s.HourlyRate < 0 {
			return nil, httperr.ErrBusiness("invalid_hourly_rate")
		}

		availability, err := domain.ParseAvailability(s.AvailabilityStatus)
		if err != nil {
			return nil, err
		}

		if _, err := uc.repo.GetService(ctx, s.ServiceID); err != nil {
			return nil, err
		}

		rows = append(rows, models.ProviderService{
			ProviderID:         in.ProviderID,
			ServiceID:          s.ServiceID,
			HourlyRate:         s.HourlyRate,
			AvailabilityStatus: availability,
			ProfessionalBio:    s.ProfessionalBio,
		})
	}

	if err := uc.repo.CreateOfferings(ctx, rows); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, uc.cache, cache.PrefixProviders)

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(in.Actor.UserID),
		Action:   "offerings_registered",
		Entity:   "provider",
		EntityID: audit.Ref(in.ProviderID),
		Metadata: map[string]int{"count": len(rows)},
	})

	return rows, nil
}
