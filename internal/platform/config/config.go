// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (catalogue source, Redis) via constructors.
  - Optional Backends: PostgreSQL and Redis are only dialled when configured.
*/
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/super3000/internal/i18n"
)

// Catalogue source kinds accepted by CATALOG_SOURCE.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// placeholderWhatsApp is the WHATSAPP_NUMBER default. It only reaches a real
// chat in development.
const placeholderWhatsApp = "+2010XXXXXXX"

// # Configuration Schema

// Config holds all runtime configuration for the Super 3000 catalogue server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Catalogue origin: a directory of JSON/YAML files or PostgreSQL
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"file"`
	CatalogDir    string `env:"CATALOG_DIR"    envDefault:"./data/catalog"`

	// Relational Database (PostgreSQL), required for the postgres source
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value store for browse sessions (Redis). Empty keeps sessions in memory.
	RedisURL   string        `env:"REDIS_URL"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	// Storefront
	SiteURL        string `env:"SITE_URL"        envDefault:"http://localhost:3000"`
	WhatsAppNumber string `env:"WHATSAPP_NUMBER" envDefault:"+2010XXXXXXX"`
	DefaultLocale  string `env:"DEFAULT_LOCALE"  envDefault:"ar"`

	// Cross-Origin Resource Sharing
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks combinations the env tags cannot express.
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case SourceFile:
		if strings.TrimSpace(c.CatalogDir) == "" {
			return errors.New("config: CATALOG_DIR is required for the file catalogue source")
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("config: DATABASE_URL is required for the postgres catalogue source")
		}
	default:
		return fmt.Errorf("config: unknown CATALOG_SOURCE %q (want %q or %q)", c.CatalogSource, SourceFile, SourcePostgres)
	}

	if !i18n.IsSupported(c.DefaultLocale) {
		return fmt.Errorf("config: unsupported DEFAULT_LOCALE %q", c.DefaultLocale)
	}

	if c.SessionTTL <= 0 {
		return errors.New("config: SESSION_TTL must be positive")
	}

	if c.IsProduction() {
		if c.WhatsAppNumber == "" || c.WhatsAppNumber == placeholderWhatsApp {
			return errors.New("config: WHATSAPP_NUMBER must be set in production")
		}
		if strings.Contains(c.SiteURL, "localhost") {
			return fmt.Errorf("config: SITE_URL %q is not a public address", c.SiteURL)
		}
	}

	return nil
}

// Locale returns the configured default locale.
func (c *Config) Locale() i18n.Locale {
	return i18n.Resolve(c.DefaultLocale)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
