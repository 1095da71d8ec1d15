package domain

// CatalogItem is a bookable product or extra from the static catalog.
// Mandatory items reuse the same shape but are always priced at the base
// price with quantity 1.
type CatalogItem struct {
	ID            string   `json:"id" mapstructure:"id"`
	Name          string   `json:"name" mapstructure:"name"`
	Description   string   `json:"description,omitempty" mapstructure:"description"`
	Price         float64  `json:"price" mapstructure:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty" mapstructure:"discount_price"`
	DurationHours int      `json:"duration_hours,omitempty" mapstructure:"duration_hours"`
	AllowQuantity bool     `json:"allow_quantity" mapstructure:"allow_quantity"`
	MaxQuantity   int      `json:"max_quantity,omitempty" mapstructure:"max_quantity"`
	Mandatory     bool     `json:"mandatory,omitempty" mapstructure:"mandatory"`
}

// SelectedItem is a catalog item with the quantity the customer picked.
// For items that do not allow quantity selection the quantity is always 1,
// resolved at the request boundary.
type SelectedItem struct {
	Item     CatalogItem `json:"item"`
	Quantity int         `json:"quantity"`
}
