package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	domain "github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/infra/cache"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type CreateReviewInput struct {
	Actor     user.Actor
	BookingID uint
	Rating    int
	Comment   string
}

// CreateReview lets the seeker rate a completed booking once.
type CreateReview struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewCreateReview(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *CreateReview {
	return &CreateReview{repo: repo, cache: c, audit: audit}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	if b.SeekerID != in.Actor.UserID {
		return nil, httperr.ErrBusiness("forbidden")
	}
	if domain.Status(b.Status) != domain.StatusCompleted {
		return nil, httperr.ErrBusiness("booking_not_completed")
	}

	r := &models.Review{
		BookingID:  b.ID,
		ReviewerID: b.SeekerID,
		RevieweeID: b.ProviderID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	}
	if err := uc.repo.CreateReview(ctx, r); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, uc.cache, cache.PrefixProviders)

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(in.Actor.UserID),
		Action:   "review_created",
		Entity:   "booking",
		EntityID: audit.Ref(b.ID),
		Metadata: map[string]int{"rating": in.Rating},
	})
	return r, nil
}
