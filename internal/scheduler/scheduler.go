package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/hirely-api/internal/timezone"
)

const (
	ReminderSpec = "*/15 * * * *"
	PurgeSpec    = "0 * * * *"

	jobTimeout = 2 * time.Minute
)

type Reminders interface {
	Execute(ctx context.Context) (int, error)
}

type Purger interface {
	Execute(ctx context.Context) (int64, error)
}

// Scheduler runs the background jobs in the application timezone.
type Scheduler struct {
	cron *cron.Cron
}

func New(tz string, reminders Reminders, purger Purger) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(timezone.Location(tz)))

	if _, err := c.AddFunc(ReminderSpec, func() { runReminders(reminders) }); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(PurgeSpec, func() { runPurge(purger) }); err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("scheduler started")
}

// Stop waits for running jobs or until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		log.Println("scheduler stop timed out")
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func runReminders(uc Reminders) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := uc.Execute(ctx)
	if err != nil {
		log.Printf("reminders: sent %d before error: %v", n, err)
		return
	}
	if n > 0 {
		log.Printf("reminders: sent %d", n)
	}
}

func runPurge(uc Purger) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := uc.Execute(ctx)
	if err != nil {
		log.Printf("session purge failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("session purge: removed %d", n)
	}
}
