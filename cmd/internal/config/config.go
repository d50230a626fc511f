package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port   string
	DBPath string

	// Location composite dates are interpreted in when deriving the
	// past/today/upcoming classification.
	Location *time.Location

	MetricsNamespace string
}

// Load reads configuration from environment variables, with an
// optional .env file. Every key has a working default.
func Load() (*Config, error) {
	godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:             getEnv("PORT", "6060"),
		DBPath:           getEnv("DB_PATH", "./database.db"),
		Location:         loc,
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "vanails"),
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
