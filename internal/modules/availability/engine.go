package availability

import (
	"fmt"
	"time"

	"github.com/ladwig/studio-booking-tool/internal/config"
	"github.com/ladwig/studio-booking-tool/internal/domain"
)

// GenerateCandidateSlots produces the bookable windows of a single day for a
// service of the given duration. Start hours run from the earliest booking
// start up to min(latest booking start, closing hour - duration), one slot
// per hour. The result is empty when the service does not fit the operating
// window; that is a valid outcome, not an error.
func GenerateCandidateSlots(day time.Time, durationHours int, oh config.OperatingHours, loc *time.Location) []domain.CandidateSlot {
	if durationHours <= 0 {
		return nil
	}

	maxStart := oh.LatestBookingStart
	if cap := oh.ClosingHour - durationHours; cap < maxStart {
		maxStart = cap
	}

	var slots []domain.CandidateSlot
	for hour := oh.EarliestBookingStart; hour <= maxStart; hour++ {
		endHour := hour + durationHours
		if endHour > oh.ClosingHour {
			continue
		}

		start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc)
		slots = append(slots, domain.CandidateSlot{
			Start: start,
			End:   start.Add(time.Duration(durationHours) * time.Hour),
			Label: fmt.Sprintf("%02d:00 - %02d:00", hour, endHour),
		})
	}
	return slots
}

// IsSlotBookable reports whether a candidate slot can still be booked.
// A slot is rejected when it starts before now plus the advance-notice
// window, or when it overlaps any booked interval. Intervals are half-open,
// so a booking ending exactly at the slot start does not collide and
// back-to-back bookings stay possible.
func IsSlotBookable(slot domain.CandidateSlot, booked []domain.BookedInterval, minAdvanceHours int, now time.Time) bool {
	earliestStart := now.Add(time.Duration(minAdvanceHours) * time.Hour)
	if slot.Start.Before(earliestStart) {
		return false
	}

	for _, b := range booked {
		// [a,b) and [c,d) overlap iff a < d && c < b.
		if slot.Start.Before(b.End) && b.Start.Before(slot.End) {
			return false
		}
	}
	return true
}

// FilterAvailable flags every candidate slot against the booked intervals
// and the advance-notice rule, preserving input order. Slots are never
// dropped here; hiding unavailable ones is the caller's display policy.
func FilterAvailable(slots []domain.CandidateSlot, booked []domain.BookedInterval, minAdvanceHours int, now time.Time) []domain.SlotAvailability {
	out := make([]domain.SlotAvailability, 0, len(slots))
	for _, s := range slots {
		out = append(out, domain.SlotAvailability{
			Slot:      s,
			Available: IsSlotBookable(s, booked, minAdvanceHours, now),
		})
	}
	return out
}
