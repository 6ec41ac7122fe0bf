package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	PostgresURI string
	RedisURI    string
	SecretKey   string // Signs session/flash cookies
	Port        string
	Environment string // ENV: production, development, etc.
	LogDir      string
	LogLevel    string
	SessionTTL  time.Duration // Default session lifetime
	RememberTTL time.Duration // "Remember me" session lifetime
}

func Load() *Config {
	return &Config{
		PostgresURI: getEnv("POSTGRES_URI", "postgres://localhost:5432/daybook?sslmode=disable"),
		RedisURI:    getEnv("REDIS_URI", "redis://localhost:6379/0"),
		SecretKey:   getEnv("SECRET_KEY", ""),
		Port:        getEnv("PORT", "8080"),
		Environment: strings.ToLower(strings.TrimSpace(getEnv("ENV", "development"))),
		LogDir:      getEnv("LOG_DIR", ""),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		SessionTTL:  time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		RememberTTL: time.Duration(getEnvInt("REMEMBER_TTL_HOURS", 30*24)) * time.Hour,
	}
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
