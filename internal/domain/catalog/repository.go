package catalog

import (
	"context"

	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type OfferingFilter struct {
	ServiceID  uint
	ProviderID uint
}

type Repository interface {
	// -------- Services --------
	ListServices(ctx context.Context, name string) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error
	ServiceInUse(ctx context.Context, id uint) (bool, error)
	CountServices(ctx context.Context) (int64, error)

	// -------- Offerings --------
	ListOfferings(ctx context.Context, filter OfferingFilter) ([]dto.ProviderServiceView, error)
	ListProviderCards(ctx context.Context, serviceID uint) ([]dto.ProviderCard, error)

	// CreateOfferings inserts all rows or none.
	CreateOfferings(ctx context.Context, rows []models.ProviderService) error
	GetOffering(ctx context.Context, id uint, providerID uint) (*models.ProviderService, error)
	UpdateOffering(ctx context.Context, ps *models.ProviderService) error
	DeleteOffering(ctx context.Context, id uint, providerID uint) error

	// -------- Provider profile --------
	GetProvider(ctx context.Context, id uint) (*models.User, error)

	// UpdateProviderProfile saves the user and, when hourlyRate is set,
	// the rate of every offering, in one transaction.
	UpdateProviderProfile(ctx context.Context, u *models.User, hourlyRate *float64) error
	RatingSummary(ctx context.Context, providerID uint) (dto.RatingSummary, error)
}
