package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ladwig/studio-booking-tool/internal/domain"
)

func priceP(v float64) *float64 { return &v }

var (
	oneHour = domain.CatalogItem{
		ID: "1", Name: "Studio A - 1h", Price: 80, DiscountPrice: priceP(60),
		DurationHours: 1, AllowQuantity: true, MaxQuantity: 8,
	}
	halfDay = domain.CatalogItem{
		ID: "2", Name: "Studio A - Half Day", Price: 275, DiscountPrice: priceP(205),
		DurationHours: 4,
	}
	techSupport = domain.CatalogItem{
		ID: "extra-1", Name: "Tech Support", Price: 50, DiscountPrice: priceP(40),
		AllowQuantity: true, MaxQuantity: 8,
	}
	backdrop = domain.CatalogItem{
		ID: "extra-2", Name: "Color Backdrop", Price: 9,
		AllowQuantity: true, MaxQuantity: 8,
	}
	cleaning = domain.CatalogItem{
		ID: "mandatory-1", Name: "Final Cleaning", Price: 40, Mandatory: true,
	}
)

func TestPriceOf(t *testing.T) {
	assert.Equal(t, 120.0, PriceOf(oneHour, 2, true), "discount price times quantity")
	assert.Equal(t, 160.0, PriceOf(oneHour, 2, false), "base price when discounts are off")
	assert.Equal(t, 18.0, PriceOf(backdrop, 2, true), "base price when no discount price exists")
	assert.Equal(t, 275.0, PriceOf(halfDay, 1, false))
}

func TestComputeTotal_SumsSelectionAndMandatory(t *testing.T) {
	product := &domain.SelectedItem{Item: oneHour, Quantity: 2}
	extras := []domain.SelectedItem{
		{Item: techSupport, Quantity: 1},
		{Item: backdrop, Quantity: 3},
	}
	mandatory := []domain.CatalogItem{cleaning}

	// 160 + 50 + 27 + 40
	assert.Equal(t, 277.0, ComputeTotal(product, extras, mandatory, false))
	// 120 + 40 + 27 + 40
	assert.Equal(t, 227.0, ComputeTotal(product, extras, mandatory, true))
}

func TestComputeTotal_IsAdditive(t *testing.T) {
	product := &domain.SelectedItem{Item: halfDay, Quantity: 1}
	extras := []domain.SelectedItem{{Item: techSupport, Quantity: 2}}
	mandatory := []domain.CatalogItem{cleaning}

	want := PriceOf(halfDay, 1, true) + PriceOf(techSupport, 2, true) + cleaning.Price
	assert.Equal(t, want, ComputeTotal(product, extras, mandatory, true))
}

func TestComputeTotal_EmptySelection(t *testing.T) {
	assert.Equal(t, 0.0, ComputeTotal(nil, nil, nil, true))
	assert.Equal(t, 40.0, ComputeTotal(nil, nil, []domain.CatalogItem{cleaning}, true))
}

func TestComputeTotal_MandatoryItemsNeverDiscounted(t *testing.T) {
	discountedFee := domain.CatalogItem{
		ID: "m2", Name: "Fee", Price: 30, DiscountPrice: priceP(10), Mandatory: true,
	}
	assert.Equal(t, 30.0, ComputeTotal(nil, nil, []domain.CatalogItem{discountedFee}, true))
}

func TestComputeSavings(t *testing.T) {
	product := &domain.SelectedItem{Item: oneHour, Quantity: 2}
	mandatory := []domain.CatalogItem{cleaning}

	// Regular 160, discounted 120; mandatory appears on both sides.
	assert.Equal(t, 40.0, ComputeSavings(product, nil, mandatory, true))
	assert.Equal(t, 0.0, ComputeSavings(product, nil, mandatory, false))
	assert.Equal(t, 0.0, ComputeSavings(nil, []domain.SelectedItem{{Item: backdrop, Quantity: 4}}, nil, true),
		"no savings when nothing has a discount price")
}

func TestComputeSavings_NeverNegativeAndMatchesTotals(t *testing.T) {
	selections := []struct {
		product *domain.SelectedItem
		extras  []domain.SelectedItem
	}{
		{nil, nil},
		{&domain.SelectedItem{Item: oneHour, Quantity: 8}, nil},
		{&domain.SelectedItem{Item: halfDay, Quantity: 1}, []domain.SelectedItem{
			{Item: techSupport, Quantity: 3},
			{Item: backdrop, Quantity: 5},
		}},
	}
	mandatory := []domain.CatalogItem{cleaning}

	for _, sel := range selections {
		for _, discounts := range []bool{false, true} {
			total := ComputeTotal(sel.product, sel.extras, mandatory, discounts)
			regular := ComputeTotal(sel.product, sel.extras, mandatory, false)
			savings := ComputeSavings(sel.product, sel.extras, mandatory, discounts)

			assert.GreaterOrEqual(t, savings, 0.0)
			assert.LessOrEqual(t, total, regular)
			assert.InDelta(t, regular-total, savings, 0.001)
		}
	}
}
