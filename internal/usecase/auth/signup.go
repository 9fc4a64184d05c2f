package auth

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
	"github.com/BruksfildServices01/hirely-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Phone     string
	Address   string
}

// ======================================================
// USE CASE
// ======================================================

type Signup struct {
	users        user.Repository
	hasher       *Hasher
	audit        *audit.Dispatcher
	verifyDomain func(email string) bool
}

func NewSignup(
	users user.Repository,
	hasher *Hasher,
	audit *audit.Dispatcher,
	checkEmailDomain bool,
) *Signup {
	uc := &Signup{
		users:  users,
		hasher: hasher,
		audit:  audit,
	}
	if checkEmailDomain {
		uc.verifyDomain = validators.IsEmailDomainValid
	}
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Signup) Execute(
	ctx context.Context,
	in SignupInput,
) (*models.User, error) {

	name := strings.TrimSpace(strings.TrimSpace(in.FirstName) + " " + strings.TrimSpace(in.LastName))
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	email := validators.NormalizeEmail(in.Email)
	if uc.verifyDomain != nil && !uc.verifyDomain(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
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

	roleName := user.SignupRole(in.Role)
	role, err := uc.users.GetRoleByName(ctx, roleName)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		RoleID:       role.ID,
		Role:         role.Name,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		Status:       user.StatusActive,
	}

	// the unique index closes the race with a concurrent signup
	if err := uc.users.Create(ctx, u, user.DefaultSettings(0)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(u.ID),
		Action:   "user_signed_up",
		Entity:   "user",
		EntityID: audit.Ref(u.ID),
		Metadata: map[string]string{"role": u.Role},
	})

	return u, nil
}
