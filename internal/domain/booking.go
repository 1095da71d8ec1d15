package domain

import "time"

// BookedInterval is an existing reservation fetched from the external
// calendar. Intervals are half-open: [Start, End).
type BookedInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CandidateSlot is a generated bookable window for a specific day.
// Start and End are absolute instants in the studio timezone; Label is the
// "HH:MM - HH:MM" form shown in the widget.
type CandidateSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// SlotAvailability pairs a candidate slot with its availability flag.
// Unavailable slots are flagged, not dropped; whether they are shown is a
// display policy of the caller.
type SlotAvailability struct {
	Slot      CandidateSlot `json:"slot"`
	Available bool          `json:"available"`
}

type PersonalInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Booking is a finalized, priced booking draft as handed to the
// notification and calendar collaborators. It is immutable history once
// submitted; nothing reads it back.
type Booking struct {
	Reference      string         `json:"reference"`
	Product        SelectedItem   `json:"product"`
	Extras         []SelectedItem `json:"extras"`
	MandatoryItems []CatalogItem  `json:"mandatory_items"`
	Date           time.Time      `json:"date"`
	Slot           CandidateSlot  `json:"slot"`
	PersonalInfo   PersonalInfo   `json:"personal_info"`
	Note           string         `json:"note,omitempty"`
	TotalPrice     float64        `json:"total_price"`
	RegularPrice   float64        `json:"regular_price"`
	Savings        float64        `json:"savings"`
	CreatedAt      time.Time      `json:"created_at"`
}
