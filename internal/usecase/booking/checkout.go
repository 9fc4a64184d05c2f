package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/infra/payment"
)

// Checkout creates a payment link for a confirmed booking.
type Checkout struct {
	repo    domain.Repository
	gateway payment.Gateway
}

// NewCheckout accepts a nil gateway when payments are not configured.
func NewCheckout(repo domain.Repository, gateway payment.Gateway) *Checkout {
	return &Checkout{repo: repo, gateway: gateway}
}

func (uc *Checkout) Execute(
	ctx context.Context,
	actor user.Actor,
	bookingID uint,
) (*payment.CheckoutLink, error) {

	if uc.gateway == nil {
		return nil, httperr.ErrBusiness("payments_disabled")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.SeekerID != actor.UserID {
		return nil, httperr.ErrBusiness("forbidden")
	}
	if domain.Status(b.Status) != domain.StatusConfirmed {
		return nil, httperr.ErrBusiness("booking_not_confirmed")
	}

	view, err := uc.repo.GetBookingView(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	seeker, err := uc.repo.GetUser(ctx, b.SeekerID)
	if err != nil {
		return nil, err
	}

	return uc.gateway.CreateCheckout(ctx, payment.CheckoutRequest{
		BookingID:   b.ID,
		Title:       fmt.Sprintf("%s with %s on %s", view.ServiceName, view.ProviderName, view.Date),
		Amount:      b.TotalCost,
		PayerEmail:  seeker.Email,
		ExternalRef: fmt.Sprintf("booking-%d-%s", b.ID, uuid.NewString()),
	})
}
