package booking

import (
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

// CanView allows the two participants and admins.
func CanView(a user.Actor, seekerID, providerID uint) bool {
	return a.IsAdmin() || a.UserID == seekerID || a.UserID == providerID
}

// AuthorizeTransition checks who may move a booking to `to`.
// Providers confirm, complete and decline; seekers may only cancel.
func AuthorizeTransition(a user.Actor, b *models.Booking, to Status) error {
	if a.IsAdmin() {
		return nil
	}

	switch {
	case a.UserID == b.ProviderID:
		return nil
	case a.UserID == b.SeekerID:
		if to == StatusCanceled {
			return nil
		}
		return httperr.ErrBusiness("forbidden_transition")
	}

	return httperr.ErrBusiness("forbidden")
}
