package pricing

type ItemSelection struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity"`
}

type QuoteRequest struct {
	ProductID       string          `json:"product_id"`
	ProductQuantity int             `json:"product_quantity"`
	Extras          []ItemSelection `json:"extras"`
}

type QuoteResponse struct {
	Total          float64 `json:"total"`
	RegularTotal   float64 `json:"regular_total"`
	Savings        float64 `json:"savings"`
	TotalLabel     string  `json:"total_label"`
	SavingsLabel   string  `json:"savings_label"`
	Currency       string  `json:"currency"`
	DiscountsApply bool    `json:"discounts_apply"`
}
