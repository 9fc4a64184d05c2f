package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/timezone"
)

// SendReminders mails both sides of every confirmed booking dated
// tomorrow in the application timezone, once per booking.
type SendReminders struct {
	repo     domain.Repository
	notifier Notifier
	tz       string
	now      func() time.Time
}

func NewSendReminders(repo domain.Repository, notifier Notifier, tz string) *SendReminders {
	return &SendReminders{
		repo:     repo,
		notifier: notifier,
		tz:       tz,
		now:      time.Now,
	}
}

func (uc *SendReminders) Execute(ctx context.Context) (int, error) {
	now := uc.now().In(timezone.Location(uc.tz))
	tomorrow := timezone.DateAfter(now, 1)

	due, err := uc.repo.ListDueReminders(ctx, tomorrow)
	if err != nil {
		return 0, err
	}

	// an unqueued reminder stays unmarked and is retried on the next run
	sent := 0
	for _, b := range due {
		if err := uc.notifier.BookingReminder(b); err != nil {
			return sent, err
		}

		if err := uc.repo.MarkReminderSent(ctx, b.ID, now); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}
