package booking

import (
	"strings"

	"github.com/BruksfildServices01/hirely-api/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// transitions lists every allowed move; anything absent is rejected.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCompleted, StatusCanceled},
}

// ParseStatus accepts any casing and the "cancelled" spelling.
func ParseStatus(raw string) (Status, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "cancelled" {
		s = string(StatusCanceled)
	}

	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func InitialStatus() Status {
	return StatusPending
}

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

// IsActive reports whether a booking still holds the provider's time.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}
