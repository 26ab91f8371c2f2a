package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Storage drivers the repository can be backed by.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

type Config struct {
	Env         string
	Port        string
	Storage     string
	StorePath   string
	DatabaseURL string
	Locale      string
}

// Load reads .env (when present) and assembles the config from environment
// variables with sane defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on system env variables")
	}

	return &Config{
		Env:         getEnv("ENV", "development"),
		Port:        getEnv("PORT", "3000"),
		Storage:     getEnv("STORAGE", StorageFile),
		StorePath:   getEnv("STORE_PATH", "accounts.yml"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Locale:      getEnv("LOCALE", "en"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
