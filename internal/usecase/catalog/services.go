package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	domain "github.com/BruksfildServices01/hirely-api/internal/domain/catalog"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/infra/cache"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListServices struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewListServices(repo domain.Repository, c cache.Cache, ttl time.Duration) *ListServices {
	return &ListServices{repo: repo, cache: c, ttl: ttl}
}

// Execute filters by exact name when one is given.
func (uc *ListServices) Execute(ctx context.Context, name string) ([]models.Service, error) {
	name = strings.TrimSpace(name)

	key := cache.PrefixServices + "all"
	if name != "" {
		key = cache.PrefixServices + "name:" + name
	}

	return cache.Remember(ctx, uc.cache, key, uc.ttl, func() ([]models.Service, error) {
		return uc.repo.ListServices(ctx, name)
	})
}

// ======================================================
// ADMIN CATALOG
// ======================================================

type ServiceInput struct {
	Name        string
	Category    string
	Description string
	Image       string
}

type ManageServices struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewManageServices(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *ManageServices {
	return &ManageServices{repo: repo, cache: c, audit: audit}
}

func (uc *ManageServices) Create(
	ctx context.Context,
	actorID uint,
	in ServiceInput,
) (*models.Service, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	s := &models.Service{
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		Description: in.Description,
		Image:       in.Image,
	}
	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.changed(ctx, actorID, "service_created", s.ID)
	return s, nil
}

func (uc *ManageServices) Update(
	ctx context.Context,
	actorID uint,
	id uint,
	in ServiceInput,
) (*models.Service, error) {

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		s.Name = name
	}
	if in.Category != "" {
		s.Category = strings.TrimSpace(in.Category)
	}
	if in.Description != "" {
		s.Description = in.Description
	}
	if in.Image != "" {
		s.Image = in.Image
	}

	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.changed(ctx, actorID, "service_updated", s.ID)
	return s, nil
}

// Delete refuses services that offerings or bookings still reference.
func (uc *ManageServices) Delete(ctx context.Context, actorID uint, id uint) error {
	if _, err := uc.repo.GetService(ctx, id); err != nil {
		return err
	}

	inUse, err := uc.repo.ServiceInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return httperr.ErrBusiness("service_in_use")
	}

	if err := uc.repo.DeleteService(ctx, id); err != nil {
		return err
	}

	uc.changed(ctx, actorID, "service_deleted", id)
	return nil
}

func (uc *ManageServices) changed(ctx context.Context, actorID uint, action string, id uint) {
	cache.Invalidate(ctx, uc.cache, cache.PrefixServices, cache.PrefixProviders)

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(actorID),
		Action:   action,
		Entity:   "service",
		EntityID: audit.Ref(id),
	})
}
