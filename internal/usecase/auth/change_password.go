package auth

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/validators"
)

type ChangePasswordInput struct {
	Email           string
	CurrentPassword string
	NewPassword     string
}

type ChangePassword struct {
	users    user.Repository
	sessions user.SessionRepository
	hasher   *Hasher
	audit    *audit.Dispatcher
}

func NewChangePassword(
	users user.Repository,
	sessions user.SessionRepository,
	hasher *Hasher,
	audit *audit.Dispatcher,
) *ChangePassword {
	return &ChangePassword{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		audit:    audit,
	}
}

// Execute replaces the password and signs the user out everywhere.
func (uc *ChangePassword) Execute(
	ctx context.Context,
	in ChangePasswordInput,
) error {

	u, err := uc.users.GetByEmail(ctx, validators.NormalizeEmail(in.Email))
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			uc.hasher.Burn(in.CurrentPassword)
			return httperr.ErrBusiness("invalid_credentials")
		}
		return err
	}

	if !uc.hasher.Matches(u.PasswordHash, in.CurrentPassword) {
		return httperr.ErrBusiness("invalid_credentials")
	}

	hash, err := uc.hasher.Hash(in.NewPassword)
	if err != nil {
		return err
	}

	if err := uc.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return err
	}

	if err := uc.sessions.RevokeAllForUser(ctx, u.ID, time.Now()); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(u.ID),
		Action:   "password_changed",
		Entity:   "user",
		EntityID: audit.Ref(u.ID),
	})
	return nil
}
