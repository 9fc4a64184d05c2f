package fakes

import (
	"context"

	"github.com/BruksfildServices01/hirely-api/internal/domain/catalog"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type Catalog struct {
	ListServicesFunc          func(ctx context.Context, name string) ([]models.Service, error)
	GetServiceFunc            func(ctx context.Context, id uint) (*models.Service, error)
	CreateServiceFunc         func(ctx context.Context, s *models.Service) error
	UpdateServiceFunc         func(ctx context.Context, s *models.Service) error
	DeleteServiceFunc         func(ctx context.Context, id uint) error
	ServiceInUseFunc          func(ctx context.Context, id uint) (bool, error)
	CountServicesFunc         func(ctx context.Context) (int64, error)
	ListOfferingsFunc         func(ctx context.Context, f catalog.OfferingFilter) ([]dto.ProviderServiceView, error)
	ListProviderCardsFunc     func(ctx context.Context, serviceID uint) ([]dto.ProviderCard, error)
	CreateOfferingsFunc       func(ctx context.Context, rows []models.ProviderService) error
	GetOfferingFunc           func(ctx context.Context, id, providerID uint) (*models.ProviderService, error)
	UpdateOfferingFunc        func(ctx context.Context, ps *models.ProviderService) error
	DeleteOfferingFunc        func(ctx context.Context, id, providerID uint) error
	GetProviderFunc           func(ctx context.Context, id uint) (*models.User, error)
	UpdateProviderProfileFunc func(ctx context.Context, u *models.User, rate *float64) error
	RatingSummaryFunc         func(ctx context.Context, providerID uint) (dto.RatingSummary, error)
}

func (f *Catalog) ListServices(ctx context.Context, name string) ([]models.Service, error) {
	if f.ListServicesFunc != nil {
		return f.ListServicesFunc(ctx, name)
	}
	return nil, nil
}

func (f *Catalog) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if f.GetServiceFunc != nil {
		return f.GetServiceFunc(ctx, id)
	}
	return &models.Service{ID: id}, nil
}

func (f *Catalog) CreateService(ctx context.Context, s *models.Service) error {
	if f.CreateServiceFunc != nil {
		return f.CreateServiceFunc(ctx, s)
	}
	return nil
}

func (f *Catalog) UpdateService(ctx context.Context, s *models.Service) error {
	if f.UpdateServiceFunc != nil {
		return f.UpdateServiceFunc(ctx, s)
	}
	return nil
}

func (f *Catalog) DeleteService(ctx context.Context, id uint) error {
	if f.DeleteServiceFunc != nil {
		return f.DeleteServiceFunc(ctx, id)
	}
	return nil
}

func (f *Catalog) ServiceInUse(ctx context.Context, id uint) (bool, error) {
	if f.ServiceInUseFunc != nil {
		return f.ServiceInUseFunc(ctx, id)
	}
	return false, nil
}

func (f *Catalog) CountServices(ctx context.Context) (int64, error) {
	if f.CountServicesFunc != nil {
		return f.CountServicesFunc(ctx)
	}
	return 0, nil
}

func (f *Catalog) ListOfferings(ctx context.Context, filter catalog.OfferingFilter) ([]dto.ProviderServiceView, error) {
	if f.ListOfferingsFunc != nil {
		return f.ListOfferingsFunc(ctx, filter)
	}
	return nil, nil
}

func (f *Catalog) ListProviderCards(ctx context.Context, serviceID uint) ([]dto.ProviderCard, error) {
	if f.ListProviderCardsFunc != nil {
		return f.ListProviderCardsFunc(ctx, serviceID)
	}
	return nil, nil
}

func (f *Catalog) CreateOfferings(ctx context.Context, rows []models.ProviderService) error {
	if f.CreateOfferingsFunc != nil {
		return f.CreateOfferingsFunc(ctx, rows)
	}
	return nil
}

func (f *Catalog) GetOffering(ctx context.Context, id, providerID uint) (*models.ProviderService, error) {
	if f.GetOfferingFunc != nil {
		return f.GetOfferingFunc(ctx, id, providerID)
	}
	return &models.ProviderService{ID: id, ProviderID: providerID}, nil
}

func (f *Catalog) UpdateOffering(ctx context.Context, ps *models.ProviderService) error {
	if f.UpdateOfferingFunc != nil {
		return f.UpdateOfferingFunc(ctx, ps)
	}
	return nil
}

func (f *Catalog) DeleteOffering(ctx context.Context, id, providerID uint) error {
	if f.DeleteOfferingFunc != nil {
		return f.DeleteOfferingFunc(ctx, id, providerID)
	}
	return nil
}

func (f *Catalog) GetProvider(ctx context.Context, id uint) (*models.User, error) {
	if f.GetProviderFunc != nil {
		return f.GetProviderFunc(ctx, id)
	}
	return &models.User{ID: id, Role: "provider", Status: "active"}, nil
}

func (f *Catalog) UpdateProviderProfile(ctx context.Context, u *models.User, rate *float64) error {
	if f.UpdateProviderProfileFunc != nil {
		return f.UpdateProviderProfileFunc(ctx, u, rate)
	}
	return nil
}

func (f *Catalog) RatingSummary(ctx context.Context, providerID uint) (dto.RatingSummary, error) {
	if f.RatingSummaryFunc != nil {
		return f.RatingSummaryFunc(ctx, providerID)
	}
	return dto.RatingSummary{}, nil
}

var _ catalog.Repository = (*Catalog)(nil)
