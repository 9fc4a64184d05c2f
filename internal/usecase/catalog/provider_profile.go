package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	"github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	domain "github.com/BruksfildServices01/hirely-api/internal/domain/catalog"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/infra/cache"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

// ======================================================
// READ
// ======================================================

type GetProviderProfile struct {
	repo     domain.Repository
	bookings booking.Repository
}

func NewGetProviderProfile(repo domain.Repository, bookings booking.Repository) *GetProviderProfile {
	return &GetProviderProfile{repo: repo, bookings: bookings}
}

func (uc *GetProviderProfile) Execute(
	ctx context.Context,
	providerID uint,
) (*dto.ProviderProfile, error) {

	p, err := uc.repo.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.ListOfferings(ctx, domain.OfferingFilter{ProviderID: providerID})
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []dto.ProviderServiceView{}
	}

	rating, err := uc.repo.RatingSummary(ctx, providerID)
	if err != nil {
		return nil, err
	}

	views, err := uc.bookings.ListForProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	return &dto.ProviderProfile{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.Address,
		Bio:         p.Bio,
		ProfilePic:  p.ProfilePic,
		Status:      p.Status,
		Services:    services,
		Rating:      rating.Rating,
		ReviewCount: rating.ReviewCount,
		Stats:       booking.ComputeStats(views),
	}, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateProviderProfileInput struct {
	Actor      user.Actor
	ProviderID uint

	Name       *string
	Phone      *string
	Address    *string
	Bio        *string
	HourlyRate *float64
}

type UpdateProviderProfile struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewUpdateProviderProfile(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *UpdateProviderProfile {
	return &UpdateProviderProfile{repo: repo, cache: c, audit: audit}
}

// Execute writes user fields and the rate of every offering atomically.
func (uc *UpdateProviderProfile) Execute(
	ctx context.Context,
	in UpdateProviderProfileInput,
) (*models.User, error) {

	if !in.Actor.CanActFor(in.ProviderID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if in.HourlyRate != nil && *in.HourlyRate < 0 {
		return nil, httperr.ErrBusiness("invalid_hourly_rate")
	}

	p, err := uc.repo.GetProvider(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrBusiness("invalid_request")
		}
		p.Name = name
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		p.Address = strings.TrimSpace(*in.Address)
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}

	if err := uc.repo.UpdateProviderProfile(ctx, p, in.HourlyRate); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, uc.cache, cache.PrefixProviders)

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(in.Actor.UserID),
		Action:   "provider_profile_updated",
		Entity:   "user",
		EntityID: audit.Ref(p.ID),
	})
	return p, nil
}
