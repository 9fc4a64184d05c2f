package booking

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	domain "github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

// UpdateStatus moves a booking through the lifecycle. Cancel, confirm,
// complete and the admin override all go through here.
type UpdateStatus struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewUpdateStatus(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		now:      time.Now,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor user.Actor,
	bookingID uint,
	rawStatus string,
) (*models.Booking, error) {

	to, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeTransition(actor, b, to); err != nil {
		return nil, err
	}

	from := b.Status
	if err := domain.Transition(b, to, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b, from); err != nil {
		return nil, err
	}

	if view, err := uc.repo.GetBookingView(ctx, b.ID); err == nil {
		uc.notifier.BookingStatusChanged(*view, actor.UserID)
	} else {
		log.Printf("booking %d updated but view failed: %v", b.ID, err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(actor.UserID),
		Action:   "booking_" + b.Status,
		Entity:   "booking",
		EntityID: audit.Ref(b.ID),
		Metadata: map[string]string{"from": from, "to": b.Status},
	})

	return b, nil
}
