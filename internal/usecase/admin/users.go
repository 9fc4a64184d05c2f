package admin

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/infra/cache"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListUsers struct {
	users user.Repository
}

func NewListUsers(users user.Repository) *ListUsers {
	return &ListUsers{users: users}
}

func (uc *ListUsers) Execute(ctx context.Context, f user.ListFilter) ([]models.User, error) {
	if f.Status != "" {
		s, err := user.ParseStatus(f.Status)
		if err != nil {
			return nil, err
		}
		f.Status = s
	}
	return uc.users.List(ctx, f)
}

// ======================================================
// STATUS
// ======================================================

type SetUserStatus struct {
	users    user.Repository
	sessions user.SessionRepository
	cache    cache.Cache
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewSetUserStatus(
	users user.Repository,
	sessions user.SessionRepository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *SetUserStatus {
	return &SetUserStatus{
		users:    users,
		sessions: sessions,
		cache:    c,
		audit:    audit,
		now:      time.Now,
	}
}

// Execute changes the account status. Leaving "active" signs the user
// out everywhere.
func (uc *SetUserStatus) Execute(
	ctx context.Context,
	actor user.Actor,
	userID uint,
	raw string,
) (*models.User, error) {

	status, err := user.ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	from := u.Status
	u.Status = status

	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	if status != user.StatusActive {
		if err := uc.sessions.RevokeAllForUser(ctx, u.ID, uc.now()); err != nil {
			return nil, err
		}
	}

	if u.Role == user.RoleProvider {
		cache.Invalidate(ctx, uc.cache, cache.PrefixProviders)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(actor.UserID),
		Action:   "user_status_changed",
		Entity:   "user",
		EntityID: audit.Ref(u.ID),
		Metadata: map[string]string{"from": from, "to": status},
	})

	return u, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteUser struct {
	users user.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewDeleteUser(users user.Repository, c cache.Cache, audit *audit.Dispatcher) *DeleteUser {
	return &DeleteUser{users: users, cache: c, audit: audit}
}

// Execute removes a non-admin account. Bookings referencing the user
// are kept.
func (uc *DeleteUser) Execute(ctx context.Context, actor user.Actor, userID uint) error {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if u.Role == user.RoleAdmin {
		return httperr.ErrBusiness("cannot_delete_admin")
	}

	if err := uc.users.Delete(ctx, u.ID); err != nil {
		return err
	}

	if u.Role == user.RoleProvider {
		cache.Invalidate(ctx, uc.cache, cache.PrefixProviders)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(actor.UserID),
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: audit.Ref(u.ID),
		Metadata: map[string]string{"email": u.Email, "role": u.Role},
	})
	return nil
}
