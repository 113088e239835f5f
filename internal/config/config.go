package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port           int
	LogLevel       string
	RequestTimeout time.Duration

	// Encoder
	DefaultBankCode  string
	BankLogoBasePath string // logo resources are <base>/<bank code>.png

	// Batch encoding
	MaxConcurrency int
	MaxBatchSize   int

	// Observability
	OTLPEndpoint string // empty disables trace export

	// JWT / Auth
	JWTSecret string // empty disables auth on /v1
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:           getEnvInt("PORT", 8080),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),

		DefaultBankCode:  getEnv("DEFAULT_BANK_CODE", "104"),
		BankLogoBasePath: getEnv("BANK_LOGO_BASE_PATH", "/static/img/banks"),

		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 8),
		MaxBatchSize:   getEnvInt("MAX_BATCH_SIZE", 500),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
