package availability

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ladwig/studio-booking-tool/internal/config"
)

type Service struct {
	cfg *config.Config
	cal CalendarReader
	log *zap.Logger
}

func NewService(cfg *config.Config, cal CalendarReader, log *zap.Logger) *Service {
	return &Service{cfg: cfg, cal: cal, log: log}
}

// GetDayAvailability resolves the product's duration, generates the day's
// candidate slots and flags each one against the calendar's booked
// intervals. A calendar fetch failure is surfaced as ErrUpstreamUnavailable;
// it is never rendered as a fully free day.
func (s *Service) GetDayAvailability(ctx context.Context, dateStr, productID string) (*DayAvailabilityResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", dateStr, s.cfg.Location)
	if err != nil {
		return nil, ErrValidation
	}

	product, ok := s.cfg.FindProduct(productID)
	if !ok {
		return nil, ErrUnknownProduct
	}

	now := time.Now().In(s.cfg.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.cfg.Location)
	if day.Before(today) {
		return nil, ErrDateOutOfRange
	}
	if day.After(today.AddDate(0, 0, s.cfg.BookingRules.MaxAdvanceDays)) {
		return nil, ErrDateOutOfRange
	}

	slots := GenerateCandidateSlots(day, product.DurationHours, s.cfg.OperatingHours, s.cfg.Location)

	booked, err := s.cal.BookedIntervals(ctx, day)
	if err != nil {
		s.log.Warn("booked intervals fetch failed",
			zap.String("date", dateStr),
			zap.Error(err),
		)
		return nil, ErrUpstreamUnavailable
	}

	flagged := FilterAvailable(slots, booked, s.cfg.BookingRules.MinAdvanceHours, now)

	resp := &DayAvailabilityResponse{
		Date:      dateStr,
		ProductID: productID,
		Slots:     make([]SlotResponse, 0, len(flagged)),
	}
	for _, f := range flagged {
		if !f.Available && !s.cfg.Display.ShowUnavailableSlots {
			continue
		}
		resp.Slots = append(resp.Slots, SlotResponse{
			Start:     f.Slot.Start.Format(time.RFC3339),
			End:       f.Slot.End.Format(time.RFC3339),
			Label:     f.Slot.Label,
			Available: f.Available,
		})
	}
	return resp, nil
}
