package catalog

import (
	"github.com/ladwig/studio-booking-tool/internal/config"
	"github.com/ladwig/studio-booking-tool/internal/domain"
)

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Catalog assembles the static catalog view. Configuration is loaded once
// at startup and never mutated, so this is a plain read.
func (s *Service) Catalog() CatalogResponse {
	return CatalogResponse{
		Products:         copyItems(s.cfg.Products),
		Extras:           copyItems(s.cfg.Extras),
		MandatoryItems:   copyItems(s.cfg.MandatoryItems),
		Currency:         "EUR",
		DiscountsEnabled: s.cfg.DiscountsEnabled,
		Timezone:         s.cfg.Timezone,
		BookingRules: BookingRulesDTO{
			MinAdvanceHours: s.cfg.BookingRules.MinAdvanceHours,
			MaxAdvanceDays:  s.cfg.BookingRules.MaxAdvanceDays,
		},
		Display: DisplayDTO{
			ShowUnavailableSlots:   s.cfg.Display.ShowUnavailableSlots,
			UnavailableSlotMessage: s.cfg.Display.UnavailableSlotMessage,
		},
	}
}

func copyItems(items []domain.CatalogItem) []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(items))
	copy(out, items)
	return out
}
