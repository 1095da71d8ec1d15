package availability

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ladwig/studio-booking-tool/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability", h.GetDayAvailability)
}

// GetDayAvailability handles GET /api/v1/availability?date=YYYY-MM-DD&product_id=ID
func (h *Handler) GetDayAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	productID := c.Query("product_id")
	if dateStr == "" || productID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date and product_id are required")
		return
	}

	resp, err := h.service.GetDayAvailability(c.Request.Context(), dateStr, productID)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date format, expected YYYY-MM-DD")
		case errors.Is(err, ErrUnknownProduct):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown product")
		case errors.Is(err, ErrDateOutOfRange):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Date is outside the bookable range")
		case errors.Is(err, ErrUpstreamUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Availability data is temporarily unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}
