// Package config provides environment-driven configuration for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime configuration. Values come from the environment;
// main loads a .env file first when one is present.
type Config struct {
	Port            int    // HTTP listen port
	DatabaseURL     string // PostgreSQL connection URL (pgvector enabled)
	OpenAIAPIKey    string // API key for completions and embeddings
	CompletionModel string // Override for the completion model, empty uses the default
	LogJSON         bool   // Emit JSON logs instead of console encoding
	Debug           bool   // Enable debug-level pipeline tracing
}

// FromEnv reads configuration from environment variables
func FromEnv() *Config {
	cfg := &Config{
		Port:            8080,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		CompletionModel: os.Getenv("COMPLETION_MODEL"),
		LogJSON:         boolEnv("LOG_JSON"),
		Debug:           boolEnv("DEBUG"),
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	return cfg
}

// Validate checks that the configuration is complete enough to run the service
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
