package catalog

import (
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
	rg.GET("/catalog", h.GetCatalog)
}

// GetCatalog handles GET /api/v1/catalog.
func (h *Handler) GetCatalog(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Catalog())
}
