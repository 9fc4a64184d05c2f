package user

import "strings"

const (
	RoleSeeker   = "seeker"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// SignupRole maps a requested role to one a user may self-assign.
// Admin accounts are only created through the seed path.
func SignupRole(requested string) string {
	if strings.EqualFold(strings.TrimSpace(requested), RoleProvider) {
		return RoleProvider
	}
	return RoleSeeker
}
