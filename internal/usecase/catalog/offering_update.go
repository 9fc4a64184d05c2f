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

type UpdateOfferingInput struct {
	Actor      user.Actor
	ProviderID uint
	OfferingID uint

	HourlyRate         *float64
	AvailabilityStatus *string
	ProfessionalBio    *string
}

type ManageOffering struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewManageOffering(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *ManageOffering {
	return &ManageOffering{repo: repo, cache: c, audit: audit}
}

func (uc *ManageOffering) Update(
	ctx context.Context,
	in UpdateOfferingInput,
) (*models.ProviderService, error) {

	if !in.Actor.CanActFor(in.ProviderID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	ps, err := uc.repo.GetOffering(ctx, in.OfferingID, in.ProviderID)
	if err != nil {
		return nil, err
	}

	if in.HourlyRate != nil {
		if *in.HourlyRate < 0 {
			return nil, httperr.ErrBusiness("invalid_hourly_rate")
		}
		ps.HourlyRate = *in.HourlyRate
	}
	if in.AvailabilityStatus != nil {
		a, err := domain.ParseAvailability(*in.AvailabilityStatus)
		if err != nil {
			return nil, err
		}
		ps.AvailabilityStatus = a
	}
	if in.ProfessionalBio != nil {
		ps.ProfessionalBio = *in.ProfessionalBio
	}

	if err := uc.repo.UpdateOffering(ctx, ps); err != nil {
		return nil, err
	}

	uc.changed(ctx, in.Actor.UserID, "offering_updated", ps.ID)
	return ps, nil
}

func (uc *ManageOffering) Delete(
	ctx context.Context,
	actor user.Actor,
	providerID uint,
	offeringID uint,
) error {

	if !actor.CanActFor(providerID) {
		return httperr.ErrBusiness("forbidden")
	}

	if err := uc.repo.DeleteOffering(ctx, offeringID, providerID); err != nil {
		return err
	}

	uc.changed(ctx, actor.UserID, "offering_deleted", offeringID)
	return nil
}

func (uc *ManageOffering) changed(ctx context.Context, actorID uint, action string, id uint) {
	cache.Invalidate(ctx, uc.cache, cache.PrefixProviders)

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(actorID),
		Action:   action,
		Entity:   "provider_service",
		EntityID: audit.Ref(id),
	})
}
