package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Upstream rate API
	RatesAPIBaseURL    string
	RatesAPITimeout    time.Duration
	RatesAPIMaxRetries int

	// Ephemeral cache TTL for rates and the supported-currency list.
	RateCacheTTL time.Duration

	// Default chunk size for batch conversion runs.
	ConversionBatchSize int

	// Rate limit expression for the HTTP API, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATES_API_BASE_URL", "https://api.exchangerate-api.com/v4")
	viper.SetDefault("RATES_API_TIMEOUT", "10s")
	viper.SetDefault("RATES_API_MAX_RETRIES", 3)
	viper.SetDefault("RATE_CACHE_TTL", "24h")
	viper.SetDefault("CONVERSION_BATCH_SIZE", 100)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RatesAPIBaseURL = viper.GetString("RATES_API_BASE_URL")

	apiTimeoutStr := viper.GetString("RATES_API_TIMEOUT")
	apiTimeout, err := time.ParseDuration(apiTimeoutStr)
	if err != nil {
		apiTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for RATES_API_TIMEOUT ('%s'). Defaulting to %s.\n", apiTimeoutStr, apiTimeout)
	}
	cfg.RatesAPITimeout = apiTimeout

	cfg.RatesAPIMaxRetries = viper.GetInt("RATES_API_MAX_RETRIES")
	if cfg.RatesAPIMaxRetries < 1 {
		cfg.RatesAPIMaxRetries = 3
		log.Printf("Warning: RATES_API_MAX_RETRIES must be at least 1. Defaulting to %d.\n", cfg.RatesAPIMaxRetries)
	}

	cacheTTLStr := viper.GetString("RATE_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = 24 * time.Hour
		log.Printf("Warning: Invalid value for RATE_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL)
	}
	cfg.RateCacheTTL = cacheTTL

	cfg.ConversionBatchSize = viper.GetInt("CONVERSION_BATCH_SIZE")
	if cfg.ConversionBatchSize < 1 {
		cfg.ConversionBatchSize = 100
		log.Printf("Warning: CONVERSION_BATCH_SIZE must be at least 1. Defaulting to %d.\n", cfg.ConversionBatchSize)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
