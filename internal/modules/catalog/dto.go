package catalog

import "github.com/ladwig/studio-booking-tool/internal/domain"

// CatalogResponse is everything the widget needs to render its steps:
// the item lists plus the scheduling and display rules.
type CatalogResponse struct {
	Products       []domain.CatalogItem `json:"products"`
	Extras         []domain.CatalogItem `json:"extras"`
	MandatoryItems []domain.CatalogItem `json:"mandatory_items"`

	Currency         string          `json:"currency"`
	DiscountsEnabled bool            `json:"discounts_enabled"`
	Timezone         string          `json:"timezone"`
	BookingRules     BookingRulesDTO `json:"booking_rules"`
	Display          DisplayDTO      `json:"display"`
}

type BookingRulesDTO struct {
	MinAdvanceHours int `json:"min_advance_hours"`
	MaxAdvanceDays  int `json:"max_advance_days"`
}

type DisplayDTO struct {
	ShowUnavailableSlots   bool   `json:"show_unavailable_slots"`
	UnavailableSlotMessage string `json:"unavailable_slot_message"`
}
