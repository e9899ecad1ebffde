package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// OpenWeather API key; requests simply fail upstream with an auth error
	// when it is missing.
	WeatherAPIKey string

	// Chat-completion backend.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// HTTPTimeout applies to all outbound provider calls.
	HTTPTimeout time.Duration

	// Snapshot cache retention and the refresh cadence for cached locations.
	CacheTTL        time.Duration
	RefreshInterval time.Duration

	// SessionTTL drops assistant conversations idle for longer than this.
	SessionTTL time.Duration

	// Outbound OpenWeather rate limiting.
	ProviderRPS   float64
	ProviderBurst int

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHER_DASHBOARD_API")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIBaseURL = getenvDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	cfg.OpenAIModel = getenvDefault("OPENAI_MODEL", "gpt-4o-mini")

	httpTimeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = httpTimeout

	cacheTTL, err := time.ParseDuration(getenvDefault("CACHE_TTL", "10m"))
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = cacheTTL

	refresh, err := time.ParseDuration(getenvDefault("REFRESH_INTERVAL", "15m"))
	if err != nil {
		return nil, err
	}
	cfg.RefreshInterval = refresh

	sessionTTL, err := time.ParseDuration(getenvDefault("SESSION_TTL", "1h"))
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = sessionTTL

	cfg.ProviderRPS = getenvFloat("PROVIDER_RPS", 5)
	cfg.ProviderBurst = getenvInt("PROVIDER_BURST", 10)
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
