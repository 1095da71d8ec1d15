package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladwig/studio-booking-tool/internal/domain"
)

func validConfig() *Config {
	return &Config{
		Timezone: "Europe/Berlin",
		OperatingHours: OperatingHours{
			OpeningHour:          7,
			ClosingHour:          23,
			EarliestBookingStart: 7,
			LatestBookingStart:   21,
		},
		BookingRules: BookingRules{MinAdvanceHours: 24, MaxAdvanceDays: 60},
		Products: []domain.CatalogItem{
			{ID: "1", Name: "Studio A - 1h", Price: 80, DurationHours: 1},
		},
		Extras: []domain.CatalogItem{
			{ID: "extra-1", Name: "Tech Support", Price: 50},
		},
		MandatoryItems: []domain.CatalogItem{
			{ID: "mandatory-1", Name: "Final Cleaning", Price: 40},
		},
	}
}

func TestValidate_AcceptsValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_OperatingHours(t *testing.T) {
	cfg := validConfig()
	cfg.OperatingHours.ClosingHour = 7
	assert.Error(t, cfg.Validate(), "closing must be after opening")

	cfg = validConfig()
	cfg.OperatingHours.EarliestBookingStart = 5
	assert.Error(t, cfg.Validate(), "earliest start before opening")

	cfg = validConfig()
	cfg.OperatingHours.LatestBookingStart = 23
	assert.Error(t, cfg.Validate(), "latest start at closing")

	cfg = validConfig()
	cfg.OperatingHours.OpeningHour = -1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.OperatingHours.ClosingHour = 24
	assert.Error(t, cfg.Validate())
}

func TestValidate_BookingRules(t *testing.T) {
	cfg := validConfig()
	cfg.BookingRules.MinAdvanceHours = -1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.BookingRules.MaxAdvanceDays = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_Catalog(t *testing.T) {
	cfg := validConfig()
	cfg.Extras = append(cfg.Extras, domain.CatalogItem{ID: "1", Name: "Duplicate", Price: 1})
	assert.Error(t, cfg.Validate(), "duplicate id across lists")

	cfg = validConfig()
	cfg.Products[0].Price = -5
	assert.Error(t, cfg.Validate(), "negative price")

	cfg = validConfig()
	bad := 90.0
	cfg.Products[0].DiscountPrice = &bad
	assert.Error(t, cfg.Validate(), "discount above base price")

	cfg = validConfig()
	cfg.Products[0].DurationHours = 0
	assert.Error(t, cfg.Validate(), "product without duration")

	cfg = validConfig()
	cfg.Products[0].ID = ""
	assert.Error(t, cfg.Validate(), "missing id")
}

func TestLoad_DefaultsAndCatalog(t *testing.T) {
	dir := t.TempDir()
	yaml := `
timezone: Europe/Berlin
products:
  - id: "1"
    name: "Studio A - 1h"
    price: 80
    discount_price: 60
    duration_hours: 1
    allow_quantity: true
extras:
  - id: "extra-1"
    name: "Tech Support"
    price: 50
    allow_quantity: true
    max_quantity: 4
mandatory_items:
  - id: "mandatory-1"
    name: "Final Cleaning"
    price: 40
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7, cfg.OperatingHours.OpeningHour)
	assert.Equal(t, 23, cfg.OperatingHours.ClosingHour)
	assert.Equal(t, 24, cfg.BookingRules.MinAdvanceHours)
	assert.Equal(t, 60, cfg.BookingRules.MaxAdvanceDays)
	assert.NotNil(t, cfg.Location)
	assert.Equal(t, "Europe/Berlin", cfg.Location.String())

	require.Len(t, cfg.Products, 1)
	assert.Equal(t, 8, cfg.Products[0].MaxQuantity, "max quantity defaults to 8")
	require.NotNil(t, cfg.Products[0].DiscountPrice)
	assert.Equal(t, 60.0, *cfg.Products[0].DiscountPrice)

	require.Len(t, cfg.Extras, 1)
	assert.Equal(t, 4, cfg.Extras[0].MaxQuantity, "explicit max quantity kept")

	require.Len(t, cfg.MandatoryItems, 1)
	assert.True(t, cfg.MandatoryItems[0].Mandatory)

	p, ok := cfg.FindProduct("1")
	assert.True(t, ok)
	assert.Equal(t, "Studio A - 1h", p.Name)
	_, ok = cfg.FindProduct("extra-1")
	assert.False(t, ok, "extras are not products")
}

func TestLoad_RejectsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	yaml := `
operating_hours:
  opening_hour: 10
  closing_hour: 9
  earliest_booking_start: 10
  latest_booking_start: 8
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
