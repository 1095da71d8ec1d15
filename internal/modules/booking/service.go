package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ladwig/studio-booking-tool/internal/config"
	"github.com/ladwig/studio-booking-tool/internal/domain"
	"github.com/ladwig/studio-booking-tool/internal/modules/availability"
	"github.com/ladwig/studio-booking-tool/internal/modules/pricing"
)

type Service struct {
	cfg     *config.Config
	pricing *pricing.Service
	notifs  NotificationSender
	cal     CalendarWriter
	log     *zap.Logger
}

func NewService(cfg *config.Config, pricingSvc *pricing.Service, notifs NotificationSender, cal CalendarWriter, log *zap.Logger) *Service {
	return &Service{
		cfg:     cfg,
		pricing: pricingSvc,
		notifs:  notifs,
		cal:     cal,
		log:     log,
	}
}

// Submit consumes a booking draft exactly once: validates it, re-prices it
// server-side, emails the admin and the customer, and places a tentative
// event on the studio calendar. The email is the system of record, so a
// notification failure aborts the submission; a calendar failure does not.
func (s *Service) Submit(ctx context.Context, req SubmitBookingRequest) (*domain.Booking, error) {
	if !req.TermsAccepted {
		return nil, fmt.Errorf("%w: terms must be accepted", ErrValidation)
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, s.cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", ErrValidation)
	}

	product, err := s.pricing.ResolveProduct(req.ProductID, req.ProductQuantity)
	if err != nil {
		return nil, err
	}
	extras, err := s.pricing.ResolveExtras(req.Extras)
	if err != nil {
		return nil, err
	}

	slot, err := s.resolveSlot(day, product.Item.DurationHours, req.TimeSlot)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(s.cfg.Location)
	minStart := now.Add(time.Duration(s.cfg.BookingRules.MinAdvanceHours) * time.Hour)
	if slot.Start.Before(minStart) {
		return nil, fmt.Errorf("%w: slot starts inside the advance-notice window", ErrValidation)
	}
	if day.After(now.AddDate(0, 0, s.cfg.BookingRules.MaxAdvanceDays)) {
		return nil, fmt.Errorf("%w: date is too far in the future", ErrValidation)
	}

	quote := s.pricing.QuoteSelection(product, extras)

	b := &domain.Booking{
		Reference:      uuid.NewString(),
		Product:        *product,
		Extras:         extras,
		MandatoryItems: s.pricing.MandatoryItems(),
		Date:           day,
		Slot:           slot,
		PersonalInfo: domain.PersonalInfo{
			FirstName: req.PersonalInfo.FirstName,
			LastName:  req.PersonalInfo.LastName,
			Email:     req.PersonalInfo.Email,
			Phone:     req.PersonalInfo.Phone,
		},
		Note:         req.Note,
		TotalPrice:   quote.Total,
		RegularPrice: quote.RegularTotal,
		Savings:      quote.Savings,
		CreatedAt:    now,
	}

	if err := s.notifs.SendBookingNotification(ctx, b); err != nil {
		s.log.Error("booking notification failed",
			zap.String("reference", b.Reference),
			zap.Error(err),
		)
		return nil, ErrNotificationFailed
	}

	if s.cal != nil {
		if err := s.cal.CreateTentativeEvent(ctx, b); err != nil {
			// Non-fatal: the admin email already went out.
			s.log.Warn("tentative calendar event failed",
				zap.String("reference", b.Reference),
				zap.Error(err),
			)
		}
	}

	s.log.Info("booking submitted",
		zap.String("reference", b.Reference),
		zap.String("product", b.Product.Item.ID),
		zap.String("slot", b.Slot.Label),
		zap.Float64("total", b.TotalPrice),
	)
	return b, nil
}

// resolveSlot matches the submitted "HH:MM - HH:MM" label against the
// candidate slots of that day, rejecting labels the widget could never have
// offered.
func (s *Service) resolveSlot(day time.Time, durationHours int, label string) (domain.CandidateSlot, error) {
	for _, slot := range availability.GenerateCandidateSlots(day, durationHours, s.cfg.OperatingHours, s.cfg.Location) {
		if slot.Label == label {
			return slot, nil
		}
	}
	return domain.CandidateSlot{}, fmt.Errorf("%w: unknown time slot %q", ErrValidation, label)
}
