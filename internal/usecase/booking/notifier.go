package booking

import "github.com/BruksfildServices01/hirely-api/internal/dto"

// Notifier sends booking mail. Implementations must not block.
// BookingReminder reports whether the reminder was accepted for delivery.
type Notifier interface {
	BookingRequested(b dto.BookingView)
	BookingStatusChanged(b dto.BookingView, actorID uint)
	BookingReminder(b dto.BookingView) error
}
