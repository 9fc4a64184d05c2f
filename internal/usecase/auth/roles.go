package auth

import (
	"context"

	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

// ListSignupRoles returns the roles a visitor may pick at signup.
type ListSignupRoles struct {
	users user.Repository
}

func NewListSignupRoles(users user.Repository) *ListSignupRoles {
	return &ListSignupRoles{users: users}
}

func (uc *ListSignupRoles) Execute(ctx context.Context) ([]models.Role, error) {
	return uc.users.ListRoles(ctx, []string{user.RoleSeeker, user.RoleProvider})
}
