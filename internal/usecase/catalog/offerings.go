package catalog

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/catalog"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/infra/cache"
)

type ListOfferings struct {
	repo domain.Repository
}

func NewListOfferings(repo domain.Repository) *ListOfferings {
	return &ListOfferings{repo: repo}
}

func (uc *ListOfferings) Execute(
	ctx context.Context,
	filter domain.OfferingFilter,
) ([]dto.ProviderServiceView, error) {
	return uc.repo.ListOfferings(ctx, filter)
}

// ListProvidersByService backs the "choose a provider" page.
type ListProvidersByService struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewListProvidersByService(repo domain.Repository, c cache.Cache, ttl time.Duration) *ListProvidersByService {
	return &ListProvidersByService{repo: repo, cache: c, ttl: ttl}
}

func (uc *ListProvidersByService) Execute(
	ctx context.Context,
	serviceID uint,
) ([]dto.ProviderCard, error) {

	key := fmt.Sprintf("%s%d", cache.PrefixProviders, serviceID)

	return cache.Remember(ctx, uc.cache, key, uc.ttl, func() ([]dto.ProviderCard, error) {
		return uc.repo.ListProviderCards(ctx, serviceID)
	})
}
