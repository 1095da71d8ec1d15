package pricing

import (
	"math"

	"github.com/ladwig/studio-booking-tool/internal/domain"
)

// PriceOf prices a single item for a quantity. When discounts are enabled
// and the item carries a discount price, that replaces the base price.
// Quantity resolution and clamping happen at the request boundary; this
// function prices whatever it is given.
func PriceOf(item domain.CatalogItem, quantity int, discountsEnabled bool) float64 {
	price := item.Price
	if discountsEnabled && item.DiscountPrice != nil {
		price = *item.DiscountPrice
	}
	return price * float64(quantity)
}

// ComputeTotal sums the selected product, the selected extras and every
// mandatory item. Mandatory items are compulsory service fees: always base
// price, quantity 1, never discounted.
func ComputeTotal(product *domain.SelectedItem, extras []domain.SelectedItem, mandatory []domain.CatalogItem, discountsEnabled bool) float64 {
	total := 0.0
	if product != nil {
		total += PriceOf(product.Item, product.Quantity, discountsEnabled)
	}
	for _, e := range extras {
		total += PriceOf(e.Item, e.Quantity, discountsEnabled)
	}
	for _, m := range mandatory {
		total += m.Price
	}
	return round(total)
}

// ComputeSavings is the discount amount applied: the regular total (all
// discounts off) minus the actual total, floored at zero. Mandatory items
// appear in both totals and so never contribute.
func ComputeSavings(product *domain.SelectedItem, extras []domain.SelectedItem, mandatory []domain.CatalogItem, discountsEnabled bool) float64 {
	regular := ComputeTotal(product, extras, mandatory, false)
	actual := ComputeTotal(product, extras, mandatory, discountsEnabled)
	savings := round(regular - actual)
	if savings < 0 {
		return 0
	}
	return savings
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
