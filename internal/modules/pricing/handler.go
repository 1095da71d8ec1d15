package pricing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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
	rg.POST("/pricing/quote", h.Quote)
}

// Quote handles POST /api/v1/pricing/quote. The widget calls this from the
// summary step so the displayed total always matches the server's math.
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", validator.BindingMessage(err))
		return
	}

	quote, err := h.service.Quote(req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownItem), errors.Is(err, ErrInvalidSelection):
			response.Error(c, http.StatusBadRequest, "INVALID_SELECTION", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute quote")
		}
		return
	}

	response.Success(c, http.StatusOK, quote)
}
