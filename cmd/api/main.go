package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ladwig/studio-booking-tool/internal/config"
	"github.com/ladwig/studio-booking-tool/internal/gcal"
	"github.com/ladwig/studio-booking-tool/internal/mailer"
	"github.com/ladwig/studio-booking-tool/internal/middleware"
	"github.com/ladwig/studio-booking-tool/internal/modules/availability"
	"github.com/ladwig/studio-booking-tool/internal/modules/booking"
	"github.com/ladwig/studio-booking-tool/internal/modules/catalog"
	"github.com/ladwig/studio-booking-tool/internal/modules/pricing"
	"github.com/ladwig/studio-booking-tool/internal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.Google.CalendarID == "" || cfg.Google.CredentialsFile == "" {
		zlog.Fatal("google calendar is not configured (GOOGLE_CALENDAR_ID, GOOGLE_CREDENTIALS_FILE)")
	}
	if cfg.SMTP.Host == "" {
		zlog.Fatal("smtp is not configured (SMTP_HOST)")
	}

	cal, err := gcal.NewClient(context.Background(), cfg.Google.CredentialsFile, cfg.Google.CalendarID, cfg.Location, zlog)
	if err != nil {
		zlog.Fatal("calendar client: " + err.Error())
	}
	mail := mailer.New(cfg.SMTP, cfg.Email, zlog)

	pricingService := pricing.NewService(cfg)
	pricingHandler := pricing.NewHandler(pricingService)

	availabilityService := availability.NewService(cfg, cal, zlog)
	availabilityHandler := availability.NewHandler(availabilityService)

	bookingService := booking.NewService(cfg, pricingService, mail, cal, zlog)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(cfg)
	catalogHandler := catalog.NewHandler(catalogService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.MaxRequestsPerMin))
	{
		catalogHandler.RegisterRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)
		pricingHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
	}

	zlog.Info("listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server: " + err.Error())
	}
}
