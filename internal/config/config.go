// Package config handles configuration loading for the donation platform.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the service.
type Config struct {
	DatabaseURL    string
	JWTSecret      string
	JWTExpiry      time.Duration
	RedisAddr      string
	RedisPassword  string
	Port           string
	AllowedOrigins []string
	SwaggerHost    string
	Environment    string
}

// Load reads configuration from environment variables. Missing required
// values abort startup rather than falling back to insecure defaults.
func Load() *Config {
	return &Config{
		DatabaseURL:    getEnvRequired("DATABASE_URL"),
		JWTSecret:      getEnvRequired("JWT_SECRET"),
		JWTExpiry:      parseDuration(getEnv("JWT_EXPIRY", "24h"), 24*time.Hour),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		Port:           getEnv("PORT", "8000"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
		SwaggerHost:    getEnv("SWAGGER_HOST", ""),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Str("key", key).Msg("required environment variable is not set")
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
