package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/catalog"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
)

// CheckAvailability answers whether a provider can take bookings at all.
// There is no per-slot calendar.
type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

func (uc *CheckAvailability) Execute(ctx context.Context, providerID uint) (bool, error) {
	p, err := uc.repo.GetProvider(ctx, providerID)
	if err != nil {
		if httperr.IsBusiness(err, "provider_not_found") {
			return false, nil
		}
		return false, err
	}
	return p.Status == user.StatusActive, nil
}
