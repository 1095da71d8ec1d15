package availability

import (
	"context"
	"time"

	"github.com/ladwig/studio-booking-tool/internal/domain"
)

// CalendarReader fetches the booked intervals of a single calendar day in
// the studio timezone. Implemented by the Google Calendar adapter.
type CalendarReader interface {
	BookedIntervals(ctx context.Context, day time.Time) ([]domain.BookedInterval, error)
}
