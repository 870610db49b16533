package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
	SourceXLSX     = "xlsx"

	defaultAddr     = ":8080"
	defaultPageSize = 4
)

// Config holds environment-driven configuration.
type Config struct {
	Addr     string
	PageSize int

	// CatalogSource selects the product repository: memory, postgres or xlsx.
	CatalogSource string
	DatabaseURL   string
	CatalogXLSX   string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// Load reads a .env file when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          os.Getenv("STORE_ADDR"),
		PageSize:      defaultPageSize,
		CatalogSource: strings.ToLower(strings.TrimSpace(os.Getenv("CATALOG_SOURCE"))),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		CatalogXLSX:   os.Getenv("CATALOG_XLSX"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		LogFile:       os.Getenv("LOG_FILE"),
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.CatalogSource == "" {
		cfg.CatalogSource = SourceMemory
	}

	if raw := os.Getenv("PAGE_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("PAGE_SIZE has invalid format: %w", err)
		}
		if size <= 0 {
			return Config{}, fmt.Errorf("PAGE_SIZE must be positive, got %d", size)
		}
		cfg.PageSize = size
	}

	switch cfg.CatalogSource {
	case SourceMemory:
	case SourcePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is not set")
		}
	case SourceXLSX:
		if cfg.CatalogXLSX == "" {
			return Config{}, fmt.Errorf("CATALOG_XLSX is not set")
		}
	default:
		return Config{}, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}

	return cfg, nil
}
