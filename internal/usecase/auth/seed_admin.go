package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
	"github.com/BruksfildServices01/hirely-api/internal/validators"
)

type SeedAdminInput struct {
	Name     string
	Email    string
	Password string
	Secret   string
}

// SeedAdmin is the only way to create admin accounts.
type SeedAdmin struct {
	users  user.Repository
	hasher *Hasher
	audit  *audit.Dispatcher
	secret string
}

func NewSeedAdmin(
	users user.Repository,
	hasher *Hasher,
	audit *audit.Dispatcher,
	secret string,
) *SeedAdmin {
	return &SeedAdmin{
		users:  users,
		hasher: hasher,
		audit:  audit,
		secret: secret,
	}
}

// Execute serves the HTTP endpoint and requires ADMIN_SEED_SECRET.
func (uc *SeedAdmin) Execute(
	ctx context.Context,
	in SeedAdminInput,
) (*models.User, error) {

	if uc.secret == "" {
		return nil, httperr.ErrBusiness("seed_disabled")
	}
	if subtle.ConstantTimeCompare([]byte(in.Secret), []byte(uc.secret)) != 1 {
		return nil, httperr.ErrBusiness("invalid_seed_secret")
	}

	return uc.Create(ctx, in)
}

// Create skips the secret; used by the operator CLI.
func (uc *SeedAdmin) Create(
	ctx context.Context,
	in SeedAdminInput,
) (*models.User, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "Administrator"
	}

	email := validators.NormalizeEmail(in.Email)
	if email == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	taken, err := uc.users.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("email_taken")
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	role, err := uc.users.GetRoleByName(ctx, user.RoleAdmin)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		RoleID:       role.ID,
		Role:         role.Name,
		Status:       user.StatusActive,
	}
	if err := uc.users.Create(ctx, u, user.DefaultSettings(0)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "admin_seeded",
		Entity:   "user",
		EntityID: audit.Ref(u.ID),
	})
	return u, nil
}
