package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AirtableAPIKey string `validate:"required"`
	AirtableBaseID string `validate:"required"`
	AirtableURL    string `validate:"required,url"`
	Port           string `validate:"required"`
}

func Load() (*Config, error) {
	// a missing .env file is fine, the environment may carry everything
	_ = godotenv.Load()

	cfg := &Config{
		AirtableAPIKey: getEnv("AIRTABLE_API_KEY", ""),
		AirtableBaseID: getEnv("AIRTABLE_BASE_ID", ""),
		AirtableURL:    getEnv("AIRTABLE_URL", "https://api.airtable.com/v0"),
		Port:           getEnv("PORT", "3001"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
