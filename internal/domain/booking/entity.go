package booking

import (
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Transition(b *models.Booking, to Status, now time.Time) error {
	if err := CanTransition(Status(b.Status), to); err != nil {
		return err
	}

	b.Status = string(to)

	switch to {
	case StatusConfirmed:
		b.ConfirmedAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	case StatusCanceled:
		b.CanceledAt = &now
	}
	return nil
}
