package booking

import "github.com/ladwig/studio-booking-tool/internal/modules/pricing"

type PersonalInfoPayload struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

type SubmitBookingRequest struct {
	ProductID       string                  `json:"product_id" binding:"required"`
	ProductQuantity int                     `json:"product_quantity"`
	Extras          []pricing.ItemSelection `json:"extras"`
	Date            string                  `json:"date" binding:"required"`
	TimeSlot        string                  `json:"time_slot" binding:"required"`
	PersonalInfo    PersonalInfoPayload     `json:"personal_info" binding:"required"`
	Note            string                  `json:"note"`
	TermsAccepted   bool                    `json:"terms_accepted"`
}

type SubmitBookingResponse struct {
	Reference string  `json:"reference"`
	Total     float64 `json:"total"`
	Savings   float64 `json:"savings"`
	TimeSlot  string  `json:"time_slot"`
	Date      string  `json:"date"`
}
