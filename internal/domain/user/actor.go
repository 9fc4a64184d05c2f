package user

// Actor is the authenticated caller.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanActFor allows users on their own resources and admins on anyone's.
func (a Actor) CanActFor(userID uint) bool {
	return a.IsAdmin() || a.UserID == userID
}
