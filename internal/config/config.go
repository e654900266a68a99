// internal/config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the catalog front-end reads from the
// environment. The API paths mirror the backend's per-kind resources and
// are configurable because deployments mount the catalog service under
// different prefixes.
type Config struct {
	Port        string
	Environment string

	// Catalog backend.
	BaseURL     string
	ItemsAPI    string
	BooksAPI    string
	ComicsAPI   string
	JournalsAPI string
}

// Load reads configuration from the environment, with an optional .env
// file for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8081"),
		ItemsAPI:    getEnv("ITEMS_API", "/items"),
		BooksAPI:    getEnv("BOOKS_API", "/books"),
		ComicsAPI:   getEnv("COMICS_API", "/comics"),
		JournalsAPI: getEnv("JOURNALS_API", "/journals"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
