package main

import (
	"attorney_site_go/config"
	"attorney_site_go/handlers"
	"attorney_site_go/middleware"
	"attorney_site_go/services"
	"attorney_site_go/services/i18n"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logOutput, logCloser := config.SetupLogging(cfg)
	defer logCloser.Close()

	for _, problem := range cfg.Validate() {
		log.Printf("[WARNING] Configuration: %s", problem)
	}

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	middleware.InitAssetVersions()

	dispatcher, err := services.NewDispatcher(cfg, &http.Client{})
	if err != nil {
		log.Fatalf("Failed to create dispatcher: %v", err)
	}
	log.Printf("[INFO] Form submissions dispatched via %s", dispatcher.Mode())

	forms := handlers.NewFormHandler(services.NewValidator(cfg.Location()), dispatcher)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(logOutput)

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	e.Use(echomiddleware.Secure())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	e.Use(middleware.CSPNonce())
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.CSRF(cfg))

	// Static files
	e.Static("/static", "static")

	// Public pages
	e.GET("/", handlers.LandingHandler)
	e.GET("/privacy", handlers.WebsitePrivacyHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/consultation", forms.ConsultationModalHandler)

	// Form submissions share one per-IP budget and the in-flight guard
	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Requests: middleware.PublicFormRateLimit.Requests,
		Window:   middleware.PublicFormRateLimit.Window,
		Message:  middleware.PublicFormRateLimit.Message,
		OnLimit:  handlers.RateLimitedResponse,
	})
	defer limiter.Close()
	guard := middleware.NewSubmitGuard(middleware.SubmitGuardConfig{
		OnDuplicate: handlers.DuplicateSubmissionResponse,
	})

	submissions := e.Group("", limiter.Middleware(), guard.Middleware())
	{
		submissions.POST("/consultation", forms.ConsultationSubmitHandler)
		submissions.POST("/contact", forms.ContactSubmitHandler)
		submissions.POST("/api/send-consultation-email", forms.ConsultationAPIHandler)
		submissions.POST("/api/send-contact-message", forms.ContactAPIHandler)
	}

	// Start server
	go func() {
		log.Printf("[INFO] Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] Server shutdown: %v", err)
	}
	log.Printf("[INFO] Server stopped")
}
