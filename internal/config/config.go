package config

import (
	"fmt"
	"os"
	"strconv"
)

// Catalog source values accepted by CATALOG_SOURCE
const (
	CatalogSourceBuiltin = "builtin"
	CatalogSourceRedis   = "redis"
)

// Config holds all configuration for the loot tooling
type Config struct {
	Redis   RedisConfig
	Catalog CatalogConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CatalogConfig controls where catalogs are loaded from
type CatalogConfig struct {
	Source string // "builtin" or "redis"
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Catalog: CatalogConfig{
			Source: getEnvOrDefault("CATALOG_SOURCE", CatalogSourceBuiltin),
		},
	}

	if cfg.Catalog.Source != CatalogSourceBuiltin && cfg.Catalog.Source != CatalogSourceRedis {
		return nil, fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q",
			CatalogSourceBuiltin, CatalogSourceRedis, cfg.Catalog.Source)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
