package pricing

import (
	"fmt"

	"github.com/ladwig/studio-booking-tool/internal/config"
	"github.com/ladwig/studio-booking-tool/internal/domain"
	"github.com/ladwig/studio-booking-tool/internal/pkg/money"
)

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// ResolveProduct turns a product id + requested quantity into a validated
// selection. Quantity is forced to 1 for items without quantity selection
// and must sit in [1, max] otherwise.
func (s *Service) ResolveProduct(id string, quantity int) (*domain.SelectedItem, error) {
	item, ok := s.cfg.FindProduct(id)
	if !ok {
		return nil, fmt.Errorf("%w: product %q", ErrUnknownItem, id)
	}
	return resolveSelection(item, quantity)
}

// ResolveExtras validates a list of extra selections against the catalog.
func (s *Service) ResolveExtras(selections []ItemSelection) ([]domain.SelectedItem, error) {
	out := make([]domain.SelectedItem, 0, len(selections))
	for _, sel := range selections {
		item, ok := s.cfg.FindExtra(sel.ID)
		if !ok {
			return nil, fmt.Errorf("%w: extra %q", ErrUnknownItem, sel.ID)
		}
		resolved, err := resolveSelection(item, sel.Quantity)
		if err != nil {
			return nil, err
		}
		out = append(out, *resolved)
	}
	return out, nil
}

// Quote prices a draft selection: product (optional), extras, plus every
// mandatory item, under the configured discount mode.
func (s *Service) Quote(req QuoteRequest) (*QuoteResponse, error) {
	var product *domain.SelectedItem
	if req.ProductID != "" {
		var err error
		product, err = s.ResolveProduct(req.ProductID, req.ProductQuantity)
		if err != nil {
			return nil, err
		}
	}

	extras, err := s.ResolveExtras(req.Extras)
	if err != nil {
		return nil, err
	}

	return s.quoteOf(product, extras), nil
}

// QuoteSelection prices an already-resolved selection. Used by the booking
// submission path, which resolves items itself.
func (s *Service) QuoteSelection(product *domain.SelectedItem, extras []domain.SelectedItem) *QuoteResponse {
	return s.quoteOf(product, extras)
}

func (s *Service) quoteOf(product *domain.SelectedItem, extras []domain.SelectedItem) *QuoteResponse {
	discounts := s.cfg.DiscountsEnabled
	total := ComputeTotal(product, extras, s.cfg.MandatoryItems, discounts)
	regular := ComputeTotal(product, extras, s.cfg.MandatoryItems, false)
	savings := ComputeSavings(product, extras, s.cfg.MandatoryItems, discounts)

	return &QuoteResponse{
		Total:          total,
		RegularTotal:   regular,
		Savings:        savings,
		TotalLabel:     money.FormatEUR(total),
		SavingsLabel:   money.FormatEUR(savings),
		Currency:       "EUR",
		DiscountsApply: discounts && savings > 0,
	}
}

// MandatoryItems exposes the compulsory fees for callers assembling a
// booking record.
func (s *Service) MandatoryItems() []domain.CatalogItem {
	return s.cfg.MandatoryItems
}

func resolveSelection(item domain.CatalogItem, quantity int) (*domain.SelectedItem, error) {
	if !item.AllowQuantity {
		if quantity > 1 {
			return nil, fmt.Errorf("%w: item %q does not allow quantity selection", ErrInvalidSelection, item.ID)
		}
		return &domain.SelectedItem{Item: item, Quantity: 1}, nil
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 || quantity > item.MaxQuantity {
		return nil, fmt.Errorf("%w: quantity %d for item %q out of range [1, %d]",
			ErrInvalidSelection, quantity, item.ID, item.MaxQuantity)
	}
	return &domain.SelectedItem{Item: item, Quantity: quantity}, nil
}
