package config

import (
	"errors"
	"os"
	"strconv"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all importer configuration
type Config struct {
	Importer ImporterConfig
	Output   OutputConfig
}

type ImporterConfig struct {
	Account       string // ledger account postings book against
	Currency      string // ISO-4217 code, constant across a run
	AccountNumber string // issuer token that identifies the statement
	Password      string // optional PDF password
	CurrentYear   int    // 0 means use the wall clock
}

type OutputConfig struct {
	CSVPath string // empty writes to stdout
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Importer: ImporterConfig{
			Account:       getEnv("IMPORTER_ACCOUNT", "Assets:MY:Maybank:Checking"),
			Currency:      getEnv("IMPORTER_CURRENCY", "MYR"),
			AccountNumber: getEnv("IMPORTER_ACCOUNT_NUMBER", ""),
			Password:      getEnv("IMPORTER_PDF_PASSWORD", ""),
			CurrentYear:   getEnvAsInt("IMPORTER_CURRENT_YEAR", 0),
		},
		Output: OutputConfig{
			CSVPath: getEnv("IMPORTER_CSV_PATH", ""),
		},
	}

	if cfg.Importer.AccountNumber == "" {
		return nil, errors.New("IMPORTER_ACCOUNT_NUMBER is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
