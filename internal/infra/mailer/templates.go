package mailer

import (
	"fmt"
	"html"

	"github.com/BruksfildServices01/hirely-api/internal/dto"
)

func details(b dto.BookingView) string {
	return fmt.Sprintf(`
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Client:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s - %s</li>
			<li><strong>Total:</strong> %.2f</li>
		</ul>`,
		html.EscapeString(b.ServiceName),
		html.EscapeString(b.ProviderName),
		html.EscapeString(b.SeekerName),
		b.Date, b.StartTime, b.EndTime, b.TotalCost,
	)
}

func greeting(name string) string {
	return fmt.Sprintf("<p>Hi %s,</p>", html.EscapeString(name))
}

// BookingRequested tells the provider about a new request.
func (n *Notifier) BookingRequested(b dto.BookingView) {
	_ = n.enqueue(notification{
		userID:  b.ProviderID,
		subject: fmt.Sprintf("New booking request: %s on %s", b.ServiceName, b.Date),
		body: func(name string) string {
			return greeting(name) +
				"<p>You have a new booking request waiting for your answer.</p>" +
				details(b)
		},
	})
}

// BookingStatusChanged tells the other participant about a transition.
func (n *Notifier) BookingStatusChanged(b dto.BookingView, actorID uint) {
	recipients := []uint{b.SeekerID, b.ProviderID}

	for _, id := range recipients {
		if id == actorID {
			continue
		}
		_ = n.enqueue(notification{
			userID:  id,
			subject: fmt.Sprintf("Booking #%d is now %s", b.ID, b.Status),
			body: func(name string) string {
				return greeting(name) +
					fmt.Sprintf("<p>Your booking is now <strong>%s</strong>.</p>", html.EscapeString(b.Status)) +
					details(b)
			},
		})
	}
}

// BookingReminder goes to both participants the day before. It fails
// when either mail could not be queued.
func (n *Notifier) BookingReminder(b dto.BookingView) error {
	var failed error
	for _, id := range []uint{b.SeekerID, b.ProviderID} {
		err := n.enqueue(notification{
			userID:  id,
			subject: fmt.Sprintf("Reminder: %s tomorrow at %s", b.ServiceName, b.StartTime),
			body: func(name string) string {
				return greeting(name) +
					"<p>This is a reminder for your booking tomorrow.</p>" +
					details(b)
			},
		})
		if err != nil {
			failed = err
		}
	}
	return failed
}
