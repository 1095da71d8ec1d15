package booking

import (
	"context"

	"github.com/ladwig/studio-booking-tool/internal/domain"
)

// NotificationSender delivers the admin notification and the customer
// confirmation for a finalized booking. A failure here is fatal to the
// submission.
type NotificationSender interface {
	SendBookingNotification(ctx context.Context, b *domain.Booking) error
}

// CalendarWriter places a tentative calendar entry for a finalized booking.
// Best effort; failures are logged, never surfaced to the customer.
type CalendarWriter interface {
	CreateTentativeEvent(ctx context.Context, b *domain.Booking) error
}
