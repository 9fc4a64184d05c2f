package profile

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/infra/cache"
	"github.com/BruksfildServices01/hirely-api/internal/models"
	"github.com/BruksfildServices01/hirely-api/internal/validators"
)

// ======================================================
// GET
// ======================================================

type GetProfile struct {
	users user.Repository
}

func NewGetProfile(users user.Repository) *GetProfile {
	return &GetProfile{users: users}
}

func (uc *GetProfile) Execute(ctx context.Context, actor user.Actor, userID uint) (*models.User, error) {
	if !actor.CanActFor(userID) {
		return nil, httperr.ErrBusiness("forbidden")
	}
	return uc.users.GetByID(ctx, userID)
}

// ======================================================
// UPDATE
// ======================================================

// UpdateProfileInput leaves nil fields untouched.
type UpdateProfileInput struct {
	Actor  user.Actor
	UserID uint

	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Bio     *string
}

type UpdateProfile struct {
	users user.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewUpdateProfile(users user.Repository, c cache.Cache, audit *audit.Dispatcher) *UpdateProfile {
	return &UpdateProfile{users: users, cache: c, audit: audit}
}

func (uc *UpdateProfile) Execute(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if !in.Actor.CanActFor(in.UserID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	u, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrBusiness("invalid_request")
		}
		u.Name = name
	}

	if in.Email != nil {
		if err := changeEmail(ctx, uc.users, u, *in.Email); err != nil {
			return nil, err
		}
	}

	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		u.Address = strings.TrimSpace(*in.Address)
	}
	if in.Bio != nil {
		u.Bio = strings.TrimSpace(*in.Bio)
	}

	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	// provider cards carry name and bio
	if u.Role == user.RoleProvider {
		cache.Invalidate(ctx, uc.cache, cache.PrefixProviders)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(in.Actor.UserID),
		Action:   "profile_updated",
		Entity:   "user",
		EntityID: audit.Ref(u.ID),
	})

	return u, nil
}

// changeEmail normalises raw and applies it when it is free.
func changeEmail(ctx context.Context, users user.Repository, u *models.User, raw string) error {
	email := validators.NormalizeEmail(raw)
	if email == "" || !strings.Contains(email, "@") {
		return httperr.ErrBusiness("invalid_request")
	}
	if email == u.Email {
		return nil
	}

	taken, err := users.EmailTaken(ctx, email, u.ID)
	if err != nil {
		return err
	}
	if taken {
		return httperr.ErrBusiness("email_taken")
	}

	u.Email = email
	return nil
}
