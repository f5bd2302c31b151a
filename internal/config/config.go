package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabasePath   string
	MigrationsPath string
	TemplatesPath  string
	StaticPath     string
	Env            string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "3001"),
		DatabasePath:   getEnv("DB_PATH", "./flashcards.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		TemplatesPath:  getEnv("TEMPLATES_PATH", "./web/templates"),
		StaticPath:     getEnv("STATIC_PATH", "./web/static"),
		Env:            getEnv("APP_ENV", "production"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
