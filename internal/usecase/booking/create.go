package booking

import (
	"context"
	"log"
	"strings"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	domain "github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/domain/catalog"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Actor user.Actor

	SeekerID   uint
	ProviderID uint
	ServiceID  uint

	Date      string
	StartTime string
	EndTime   string
	TotalCost float64
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Caller books for themselves
	// --------------------------------------------------
	if !in.Actor.CanActFor(in.SeekerID) {
		return nil, httperr.ErrBusiness("forbidden")
	}
	if in.SeekerID == in.ProviderID {
		return nil, httperr.ErrBusiness("self_booking")
	}

	// --------------------------------------------------
	// Date / time / cost
	// --------------------------------------------------
	slot, err := domain.NewSlot(
		strings.TrimSpace(in.Date),
		strings.TrimSpace(in.StartTime),
		strings.TrimSpace(in.EndTime),
	)
	if err != nil {
		return nil, err
	}

	if in.TotalCost < 0 {
		return nil, httperr.ErrBusiness("invalid_total_cost")
	}

	// --------------------------------------------------
	// Participants
	// --------------------------------------------------
	if _, err := uc.repo.GetUser(ctx, in.SeekerID); err != nil {
		return nil, err
	}

	provider, err := uc.repo.GetUser(ctx, in.ProviderID)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, httperr.ErrBusiness("provider_not_found")
		}
		return nil, err
	}
	if provider.Role != user.RoleProvider {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	// --------------------------------------------------
	// Offering
	// --------------------------------------------------
	offering, err := uc.repo.GetProviderOffering(ctx, in.ProviderID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if provider.Status != user.StatusActive || offering.AvailabilityStatus != catalog.Available {
		return nil, httperr.ErrBusiness("provider_unavailable")
	}

	// --------------------------------------------------
	// Insert (conflict check runs in the same transaction)
	// --------------------------------------------------
	b := &models.Booking{
		SeekerID:   in.SeekerID,
		ProviderID: in.ProviderID,
		ServiceID:  in.ServiceID,
		Date:       slot.Date,
		StartTime:  slot.Start,
		EndTime:    slot.End,
		TotalCost:  in.TotalCost,
		Status:     string(domain.InitialStatus()),
		Notes:      strings.TrimSpace(in.Notes),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Notify + audit
	// --------------------------------------------------
	if view, err := uc.repo.GetBookingView(ctx, b.ID); err == nil {
		uc.notifier.BookingRequested(*view)
	} else {
		log.Printf("booking %d created but view failed: %v", b.ID, err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(in.Actor.UserID),
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: audit.Ref(b.ID),
	})

	return b, nil
}
