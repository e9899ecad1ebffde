package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/vremea/weather-dashboard/internal/api/http"
	"github.com/vremea/weather-dashboard/internal/assistant"
	"github.com/vremea/weather-dashboard/internal/assistant/openai"
	"github.com/vremea/weather-dashboard/internal/config"
	"github.com/vremea/weather-dashboard/internal/scheduler"
	"github.com/vremea/weather-dashboard/internal/store"
	"github.com/vremea/weather-dashboard/internal/weather"
	"github.com/vremea/weather-dashboard/internal/weather/openweather"
)

func main() {
	// Load configuration (.env handling lives inside Load).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// OpenWeather client with rate limiting and a circuit breaker.
	provider := openweather.NewClient(httpClient, openweather.Config{
		APIKey:            cfg.WeatherAPIKey,
		RequestsPerSecond: cfg.ProviderRPS,
		Burst:             cfg.ProviderBurst,
	})

	// Snapshot cache with configured retention.
	cache := store.NewSnapshotCache(cfg.CacheTTL)

	// Core service orchestrating geocoding, forecasts and the cache.
	service := weather.NewService(provider, cache)

	// WeatherBot assistant on top of the chat-completions backend.
	chat := openai.NewClient(httpClient, openai.Config{
		APIKey:       cfg.OpenAIAPIKey,
		BaseURL:      cfg.OpenAIBaseURL,
		Model:        cfg.OpenAIModel,
		SystemPrompt: assistant.SystemPrompt,
	})
	assist := assistant.New(chat, cfg.SessionTTL)

	// Scheduler that periodically refreshes cached locations.
	sched := scheduler.New(service, cfg.RefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, assist)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
