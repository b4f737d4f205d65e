package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
)

type Config struct {
	HTTPAddr    string
	Source      string
	PostgresDSN string
	LogLevel    string
	LogFormat   string
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present.
func LoadConfig() (Config, error) {
	// No .env in production is fine
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		Source:      strings.ToLower(getenv("CATALOG_SOURCE", SourceStatic)),
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   strings.ToLower(getenv("LOG_FORMAT", "json")),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Source {
	case SourceStatic:
	case SourcePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is not set")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Source)
	}

	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
