package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// RateLimit is the per-IP limit over the API surface, in ulule/limiter
	// formatted notation (e.g. "300-M" for 300 requests per minute).
	RateLimit string

	// Order subsystem (revenue reports) client settings.
	OrderAPIBaseURL string
	OrderAPITimeout time.Duration

	// CORSAllowedOrigins lists the origins allowed to call the API from a browser.
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("ORDER_API_BASE_URL", "")
	viper.SetDefault("ORDER_API_TIMEOUT", "5s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// Environment variables override defaults and .env file values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.OrderAPIBaseURL = viper.GetString("ORDER_API_BASE_URL")
	if cfg.OrderAPIBaseURL == "" {
		log.Println("Warning: ORDER_API_BASE_URL not set. Revenue snapshots will be degraded.")
	}

	timeoutStr := viper.GetString("ORDER_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 5 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for ORDER_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.OrderAPITimeout = timeout

	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
