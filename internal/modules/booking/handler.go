package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ladwig/studio-booking-tool/internal/modules/pricing"
	"github.com/ladwig/studio-booking-tool/internal/pkg/response"
	"github.com/ladwig/studio-booking-tool/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Submit)
}

// Submit handles POST /api/v1/bookings.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", validator.BindingMessage(err))
		return
	}

	b, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, pricing.ErrUnknownItem), errors.Is(err, pricing.ErrInvalidSelection):
			response.Error(c, http.StatusBadRequest, "INVALID_SELECTION", err.Error())
		case errors.Is(err, ErrNotificationFailed):
			response.Error(c, http.StatusBadGateway, "NOTIFICATION_FAILED", "Failed to send booking notification")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, SubmitBookingResponse{
		Reference: b.Reference,
		Total:     b.TotalPrice,
		Savings:   b.Savings,
		TimeSlot:  b.Slot.Label,
		Date:      b.Date.Format("2006-01-02"),
	})
}
