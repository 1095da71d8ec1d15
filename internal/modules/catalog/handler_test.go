package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladwig/studio-booking-tool/internal/config"
	"github.com/ladwig/studio-booking-tool/internal/domain"
)

func TestGetCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Timezone:         "Europe/Berlin",
		DiscountsEnabled: true,
		BookingRules:     config.BookingRules{MinAdvanceHours: 24, MaxAdvanceDays: 60},
		Display: config.DisplaySettings{
			ShowUnavailableSlots:   false,
			UnavailableSlotMessage: "(Booked)",
		},
		Products: []domain.CatalogItem{
			{ID: "1", Name: "Studio A - 1h", Price: 80, DurationHours: 1},
		},
		Extras: []domain.CatalogItem{
			{ID: "extra-1", Name: "Tech Support", Price: 50},
		},
		MandatoryItems: []domain.CatalogItem{
			{ID: "mandatory-1", Name: "Final Cleaning", Price: 40, Mandatory: true},
		},
	}

	r := gin.New()
	NewHandler(NewService(cfg)).RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool            `json:"success"`
		Data    CatalogResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Len(t, body.Data.Products, 1)
	assert.Len(t, body.Data.Extras, 1)
	assert.Len(t, body.Data.MandatoryItems, 1)
	assert.Equal(t, "EUR", body.Data.Currency)
	assert.True(t, body.Data.DiscountsEnabled)
	assert.Equal(t, "Europe/Berlin", body.Data.Timezone)
	assert.Equal(t, 24, body.Data.BookingRules.MinAdvanceHours)
	assert.Equal(t, "(Booked)", body.Data.Display.UnavailableSlotMessage)
}
