package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/ladwig/studio-booking-tool/internal/domain"
)

const defaultMaxQuantity = 8

// OperatingHours describes the bookable window of the studio day.
// Hours are whole numbers in [0, 24).
type OperatingHours struct {
	OpeningHour          int `mapstructure:"opening_hour"`
	ClosingHour          int `mapstructure:"closing_hour"`
	EarliestBookingStart int `mapstructure:"earliest_booking_start"`
	LatestBookingStart   int `mapstructure:"latest_booking_start"`
}

type BookingRules struct {
	MinAdvanceHours int `mapstructure:"min_advance_hours"`
	MaxAdvanceDays  int `mapstructure:"max_advance_days"`
}

type DisplaySettings struct {
	ShowUnavailableSlots   bool   `mapstructure:"show_unavailable_slots"`
	UnavailableSlotMessage string `mapstructure:"unavailable_slot_message"`
}

type EmailSettings struct {
	AdminEmails         []string `mapstructure:"admin_emails"`
	NotificationSubject string   `mapstructure:"notification_subject"`
	From                string   `mapstructure:"from"`
}

type SMTPSettings struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

type GoogleSettings struct {
	CalendarID      string `mapstructure:"calendar_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

type Config struct {
	Port              string   `mapstructure:"port"`
	Env               string   `mapstructure:"env"`
	Timezone          string   `mapstructure:"timezone"`
	AllowedOrigins    []string `mapstructure:"allowed_origins"`
	MaxRequestsPerMin int      `mapstructure:"max_requests_per_min"`
	DiscountsEnabled  bool     `mapstructure:"discounts_enabled"`

	OperatingHours OperatingHours  `mapstructure:"operating_hours"`
	BookingRules   BookingRules    `mapstructure:"booking_rules"`
	Display        DisplaySettings `mapstructure:"display"`
	Email          EmailSettings   `mapstructure:"email"`
	SMTP           SMTPSettings    `mapstructure:"smtp"`
	Google         GoogleSettings  `mapstructure:"google"`

	Products       []domain.CatalogItem `mapstructure:"products"`
	Extras         []domain.CatalogItem `mapstructure:"extras"`
	MandatoryItems []domain.CatalogItem `mapstructure:"mandatory_items"`

	// Resolved from Timezone during Load; every slot instant, advance-notice
	// comparison and calendar day bound uses this single location.
	Location *time.Location `mapstructure:"-"`
}

// Load reads config.yaml plus environment overrides, applies defaults,
// resolves the studio timezone and validates everything. Any configuration
// error is fatal here, never per-request.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("timezone", "Europe/Berlin")
	v.SetDefault("max_requests_per_min", 120)
	v.SetDefault("operating_hours.opening_hour", 7)
	v.SetDefault("operating_hours.closing_hour", 23)
	v.SetDefault("operating_hours.earliest_booking_start", 7)
	v.SetDefault("operating_hours.latest_booking_start", 21)
	v.SetDefault("booking_rules.min_advance_hours", 24)
	v.SetDefault("booking_rules.max_advance_days", 60)
	v.SetDefault("display.unavailable_slot_message", "(Booked)")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Secrets arrive via environment, matching the deployment env names.
	bindEnvString(v, &cfg.SMTP.Host, "SMTP_HOST")
	bindEnvInt(v, &cfg.SMTP.Port, "SMTP_PORT")
	bindEnvString(v, &cfg.SMTP.User, "SMTP_USER")
	bindEnvString(v, &cfg.SMTP.Password, "SMTP_PASSWORD")
	bindEnvString(v, &cfg.Email.From, "SMTP_FROM")
	bindEnvString(v, &cfg.Google.CalendarID, "GOOGLE_CALENDAR_ID")
	bindEnvString(v, &cfg.Google.CredentialsFile, "GOOGLE_CREDENTIALS_FILE")

	cfg.applyCatalogDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return &cfg, nil
}

func bindEnvString(v *viper.Viper, dst *string, key string) {
	if s := v.GetString(key); s != "" {
		*dst = s
	}
}

func bindEnvInt(v *viper.Viper, dst *int, key string) {
	if n := v.GetInt(key); n != 0 {
		*dst = n
	}
}

func (c *Config) applyCatalogDefaults() {
	lists := [][]domain.CatalogItem{c.Products, c.Extras, c.MandatoryItems}
	for _, items := range lists {
		for i := range items {
			if items[i].AllowQuantity && items[i].MaxQuantity <= 0 {
				items[i].MaxQuantity = defaultMaxQuantity
			}
		}
	}
	for i := range c.MandatoryItems {
		c.MandatoryItems[i].Mandatory = true
	}
}

// Validate checks structural invariants of the static configuration.
func (c *Config) Validate() error {
	oh := c.OperatingHours
	for name, h := range map[string]int{
		"opening_hour":           oh.OpeningHour,
		"closing_hour":           oh.ClosingHour,
		"earliest_booking_start": oh.EarliestBookingStart,
		"latest_booking_start":   oh.LatestBookingStart,
	} {
		if h < 0 || h >= 24 {
			return fmt.Errorf("operating_hours.%s must be in [0, 24), got %d", name, h)
		}
	}
	if oh.ClosingHour <= oh.OpeningHour {
		return fmt.Errorf("closing_hour (%d) must be after opening_hour (%d)", oh.ClosingHour, oh.OpeningHour)
	}
	if oh.EarliestBookingStart < oh.OpeningHour {
		return fmt.Errorf("earliest_booking_start (%d) must not precede opening_hour (%d)", oh.EarliestBookingStart, oh.OpeningHour)
	}
	if oh.LatestBookingStart >= oh.ClosingHour {
		return fmt.Errorf("latest_booking_start (%d) must precede closing_hour (%d)", oh.LatestBookingStart, oh.ClosingHour)
	}

	if c.BookingRules.MinAdvanceHours < 0 {
		return fmt.Errorf("booking_rules.min_advance_hours must not be negative")
	}
	if c.BookingRules.MaxAdvanceDays < 0 {
		return fmt.Errorf("booking_rules.max_advance_days must not be negative")
	}

	seen := make(map[string]bool)
	for _, items := range [][]domain.CatalogItem{c.Products, c.Extras, c.MandatoryItems} {
		for _, it := range items {
			if it.ID == "" {
				return fmt.Errorf("catalog item %q has no id", it.Name)
			}
			if seen[it.ID] {
				return fmt.Errorf("duplicate catalog item id %q", it.ID)
			}
			seen[it.ID] = true
			if it.Price < 0 {
				return fmt.Errorf("catalog item %q has negative price", it.ID)
			}
			if it.DiscountPrice != nil && *it.DiscountPrice >= it.Price {
				return fmt.Errorf("catalog item %q discount price must be below base price", it.ID)
			}
		}
	}
	for _, p := range c.Products {
		if p.DurationHours <= 0 {
			return fmt.Errorf("product %q needs a positive duration", p.ID)
		}
	}

	return nil
}

// FindProduct looks up a product by id. Returns false for unknown ids.
func (c *Config) FindProduct(id string) (domain.CatalogItem, bool) {
	return findItem(c.Products, id)
}

// FindExtra looks up an extra by id. Returns false for unknown ids.
func (c *Config) FindExtra(id string) (domain.CatalogItem, bool) {
	return findItem(c.Extras, id)
}

func findItem(items []domain.CatalogItem, id string) (domain.CatalogItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.CatalogItem{}, false
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
