package availability

// SlotResponse is one candidate slot as rendered to the widget.
type SlotResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

type DayAvailabilityResponse struct {
	Date      string         `json:"date"`
	ProductID string         `json:"product_id"`
	Slots     []SlotResponse `json:"slots"`
}
